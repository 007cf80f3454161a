package logbook

import (
	"time"

	"github.com/google/uuid"
)

// Identifier kinds
const (
	KindClass    = "class"
	KindStudent  = "student"
	KindNote     = "note"
	KindModule   = "module"
	KindLesson   = "lesson"
	KindActivity = "activity"
)

const (
	// NoteDateLayout is the display format of StudentNote.Date (fr-FR short date).
	NoteDateLayout = "02/01/2006"
	// LessonDateLayout is the ISO format of Lesson.Date.
	LessonDateLayout = "2006-01-02"
)

var (
	newUUID = uuid.NewString // mockable
	nowFunc = time.Now       // mockable
)

// NewID returns a fresh "<kind>-<uuid>" identifier.
func NewID(kind string) string {
	return kind + "-" + newUUID()
}

// AppData is the whole logbook. It is always read and written as one document.
type AppData struct {
	Classes    []Class    `json:"classes"`
	Program    Program    `json:"program"`
	Lessons    []Lesson   `json:"lessons"`
	Activities []Activity `json:"activities"`
}

// Class owns its students: deleting a class deletes them.
type Class struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Level    string    `json:"level"` // e.g. A1, A2, B1
	Schedule string    `json:"schedule"`
	Students []Student `json:"students"`
}

type Student struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Notes []StudentNote `json:"notes"` // most recent first
}

type StudentNote struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"` // display date, see NoteDateLayout
	Note      string     `json:"note"`
	CreatedAt *time.Time `json:"createdAt,omitempty"` // sortable twin of Date
}

type Program struct {
	Title   string          `json:"title"`
	Goals   []string        `json:"goals"`
	Modules []ProgramModule `json:"modules"`
}

type ProgramModule struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Topics []string `json:"topics"`
}

type Lesson struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Date       string   `json:"date"` // see LessonDateLayout
	Objectives []string `json:"objectives"`
	Materials  []string `json:"materials"`
	Procedure  string   `json:"procedure"`
	Notes      string   `json:"notes"`
}

type Activity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"` // e.g. Brise-glace, Grammaire, Oral
	Description string `json:"description"`
	Duration    int    `json:"duration"` // minutes
}

// Clone returns a deep copy of the document.
func (d AppData) Clone() AppData {
	out := AppData{
		Classes:    cloneSlice(d.Classes),
		Program:    d.Program.clone(),
		Lessons:    cloneSlice(d.Lessons),
		Activities: cloneSlice(d.Activities),
	}
	for i, cls := range out.Classes {
		out.Classes[i] = cls.clone()
	}
	for i, l := range out.Lessons {
		out.Lessons[i] = l.clone()
	}
	return out
}

// Normalize replaces nil sequences with empty ones so they serialize as [].
func (d AppData) Normalize() AppData {
	if d.Classes == nil {
		d.Classes = []Class{}
	}
	for i := range d.Classes {
		if d.Classes[i].Students == nil {
			d.Classes[i].Students = []Student{}
		}
		for j := range d.Classes[i].Students {
			if d.Classes[i].Students[j].Notes == nil {
				d.Classes[i].Students[j].Notes = []StudentNote{}
			}
		}
	}
	if d.Program.Goals == nil {
		d.Program.Goals = []string{}
	}
	if d.Program.Modules == nil {
		d.Program.Modules = []ProgramModule{}
	}
	for i := range d.Program.Modules {
		if d.Program.Modules[i].Topics == nil {
			d.Program.Modules[i].Topics = []string{}
		}
	}
	if d.Lessons == nil {
		d.Lessons = []Lesson{}
	}
	for i := range d.Lessons {
		if d.Lessons[i].Objectives == nil {
			d.Lessons[i].Objectives = []string{}
		}
		if d.Lessons[i].Materials == nil {
			d.Lessons[i].Materials = []string{}
		}
	}
	if d.Activities == nil {
		d.Activities = []Activity{}
	}
	return d
}

// StudentCount is the number of students across all classes.
func (d AppData) StudentCount() int {
	var n int
	for _, cls := range d.Classes {
		n += len(cls.Students)
	}
	return n
}

func (c Class) clone() Class {
	c.Students = cloneSlice(c.Students)
	for i, s := range c.Students {
		c.Students[i] = s.clone()
	}
	return c
}

func (s Student) clone() Student {
	s.Notes = cloneSlice(s.Notes)
	return s
}

func (p Program) clone() Program {
	p.Goals = cloneSlice(p.Goals)
	p.Modules = cloneSlice(p.Modules)
	for i, m := range p.Modules {
		m.Topics = cloneSlice(m.Topics)
		p.Modules[i] = m
	}
	return p
}

func (l Lesson) clone() Lesson {
	l.Objectives = cloneSlice(l.Objectives)
	l.Materials = cloneSlice(l.Materials)
	return l
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
