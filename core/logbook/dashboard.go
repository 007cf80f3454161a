package logbook

// ClassLink is a dashboard shortcut to a class; following it selects the class.
type ClassLink struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Schedule string `json:"schedule"`
	Students int    `json:"students"`
}

type Summary struct {
	Classes    int         `json:"classes"`
	Students   int         `json:"students"`
	Lessons    int         `json:"lessons"`
	Activities int         `json:"activities"`
	QuickLinks []ClassLink `json:"quickLinks"`
}

func NewSummary(d AppData) Summary {
	links := make([]ClassLink, 0, len(d.Classes))
	for _, cls := range d.Classes {
		links = append(links, ClassLink{
			ID:       cls.ID,
			Name:     cls.Name,
			Level:    cls.Level,
			Schedule: cls.Schedule,
			Students: len(cls.Students),
		})
	}
	return Summary{
		Classes:    len(d.Classes),
		Students:   d.StudentCount(),
		Lessons:    len(d.Lessons),
		Activities: len(d.Activities),
		QuickLinks: links,
	}
}

func (svc *Service) Summary() Summary {
	return NewSummary(svc.store.Get())
}
