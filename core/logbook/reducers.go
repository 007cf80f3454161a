package logbook

import "github.com/pkg/errors"

// The functions below are the only way the document changes. Each one returns a new
// document and leaves the sequences of its input untouched, so callers may keep
// using the previous version.

var ErrNotFound = errors.New("not found")

type identified interface {
	identifier() string
}

func (c Class) identifier() string         { return c.ID }
func (s Student) identifier() string       { return s.ID }
func (n StudentNote) identifier() string   { return n.ID }
func (m ProgramModule) identifier() string { return m.ID }
func (l Lesson) identifier() string        { return l.ID }
func (a Activity) identifier() string      { return a.ID }

func appendItem[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

func prependItem[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// replaceByID maps the item matching id through fn; position is preserved.
func replaceByID[T identified](items []T, id string, fn func(T) (T, error)) ([]T, error) {
	out := make([]T, len(items))
	found := false
	for i, item := range items {
		if !found && item.identifier() == id {
			updated, err := fn(item)
			if err != nil {
				return nil, err
			}
			out[i] = updated
			found = true
			continue
		}
		out[i] = item
	}
	if !found {
		return nil, ErrNotFound
	}
	return out, nil
}

func removeByID[T identified](items []T, id string) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.identifier() != id {
			out = append(out, item)
		}
	}
	if len(out) == len(items) {
		return nil, ErrNotFound
	}
	return out, nil
}

func findByID[T identified](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.identifier() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Classes

func AddClass(d AppData, cls Class) AppData {
	d.Classes = appendItem(d.Classes, cls)
	return d
}

func UpdateClass(d AppData, id string, form ClassForm) (AppData, error) {
	classes, err := replaceByID(d.Classes, id, func(cls Class) (Class, error) {
		cls.Name = form.Name
		cls.Level = form.Level
		cls.Schedule = form.Schedule
		return cls, nil
	})
	if err != nil {
		return d, wrapNotFound(err, "class %q", id)
	}
	d.Classes = classes
	return d, nil
}

// DeleteClass removes the class together with its students.
func DeleteClass(d AppData, id string) (AppData, error) {
	classes, err := removeByID(d.Classes, id)
	if err != nil {
		return d, wrapNotFound(err, "class %q", id)
	}
	d.Classes = classes
	return d, nil
}

// updateClassStudents rewrites the student list of one class.
func updateClassStudents(d AppData, classID string, fn func([]Student) ([]Student, error)) (AppData, error) {
	classes, err := replaceByID(d.Classes, classID, func(cls Class) (Class, error) {
		students, err := fn(cls.Students)
		if err != nil {
			return cls, err
		}
		cls.Students = students
		return cls, nil
	})
	if err != nil {
		return d, wrapNotFound(err, "class %q", classID)
	}
	d.Classes = classes
	return d, nil
}

// wrapNotFound names the missing item when err is the bare ErrNotFound of this level.
// Errors coming from a nested level are already named and pass through.
func wrapNotFound(err error, format string, args ...interface{}) error {
	if err == ErrNotFound {
		return errors.Wrapf(err, format, args...)
	}
	return err
}

// Students

func AddStudent(d AppData, classID string, st Student) (AppData, error) {
	return updateClassStudents(d, classID, func(students []Student) ([]Student, error) {
		return appendItem(students, st), nil
	})
}

func UpdateStudent(d AppData, classID, studentID string, form StudentForm) (AppData, error) {
	return updateClassStudents(d, classID, func(students []Student) ([]Student, error) {
		out, err := replaceByID(students, studentID, func(st Student) (Student, error) {
			st.Name = form.Name
			return st, nil
		})
		return out, wrapNotFound(err, "student %q", studentID)
	})
}

func DeleteStudent(d AppData, classID, studentID string) (AppData, error) {
	return updateClassStudents(d, classID, func(students []Student) ([]Student, error) {
		out, err := removeByID(students, studentID)
		return out, wrapNotFound(err, "student %q", studentID)
	})
}

// Notes

func updateStudentNotes(d AppData, classID, studentID string, fn func([]StudentNote) ([]StudentNote, error)) (AppData, error) {
	return updateClassStudents(d, classID, func(students []Student) ([]Student, error) {
		out, err := replaceByID(students, studentID, func(st Student) (Student, error) {
			notes, err := fn(st.Notes)
			if err != nil {
				return st, err
			}
			st.Notes = notes
			return st, nil
		})
		return out, wrapNotFound(err, "student %q", studentID)
	})
}

// AddNote puts the note first: notes are kept most recent first.
func AddNote(d AppData, classID, studentID string, note StudentNote) (AppData, error) {
	return updateStudentNotes(d, classID, studentID, func(notes []StudentNote) ([]StudentNote, error) {
		return prependItem(notes, note), nil
	})
}

func DeleteNote(d AppData, classID, studentID, noteID string) (AppData, error) {
	return updateStudentNotes(d, classID, studentID, func(notes []StudentNote) ([]StudentNote, error) {
		out, err := removeByID(notes, noteID)
		return out, wrapNotFound(err, "note %q", noteID)
	})
}

// Program

func UpdateProgram(d AppData, form ProgramForm) AppData {
	d.Program.Title = form.Title
	d.Program.Goals = append([]string{}, form.Goals...)
	return d
}

func AddModule(d AppData, m ProgramModule) AppData {
	d.Program.Modules = appendItem(d.Program.Modules, m)
	return d
}

func UpdateModule(d AppData, id string, form ModuleForm) (AppData, error) {
	modules, err := replaceByID(d.Program.Modules, id, func(m ProgramModule) (ProgramModule, error) {
		m.Title = form.Title
		m.Topics = append([]string{}, form.Topics...)
		return m, nil
	})
	if err != nil {
		return d, wrapNotFound(err, "module %q", id)
	}
	d.Program.Modules = modules
	return d, nil
}

func DeleteModule(d AppData, id string) (AppData, error) {
	modules, err := removeByID(d.Program.Modules, id)
	if err != nil {
		return d, wrapNotFound(err, "module %q", id)
	}
	d.Program.Modules = modules
	return d, nil
}

// Lessons

func AddLesson(d AppData, l Lesson) AppData {
	d.Lessons = appendItem(d.Lessons, l)
	return d
}

func UpdateLesson(d AppData, id string, form LessonForm) (AppData, error) {
	lessons, err := replaceByID(d.Lessons, id, func(l Lesson) (Lesson, error) {
		l.Title = form.Title
		l.Date = form.Date
		l.Objectives = append([]string{}, form.Objectives...)
		l.Materials = append([]string{}, form.Materials...)
		l.Procedure = form.Procedure
		l.Notes = form.Notes
		return l, nil
	})
	if err != nil {
		return d, wrapNotFound(err, "lesson %q", id)
	}
	d.Lessons = lessons
	return d, nil
}

func DeleteLesson(d AppData, id string) (AppData, error) {
	lessons, err := removeByID(d.Lessons, id)
	if err != nil {
		return d, wrapNotFound(err, "lesson %q", id)
	}
	d.Lessons = lessons
	return d, nil
}

// Activities

func AddActivity(d AppData, a Activity) AppData {
	d.Activities = appendItem(d.Activities, a)
	return d
}

// PrependActivity is used for imported ideas so they show up first.
func PrependActivity(d AppData, a Activity) AppData {
	d.Activities = prependItem(d.Activities, a)
	return d
}

func UpdateActivity(d AppData, id string, form ActivityForm) (AppData, error) {
	activities, err := replaceByID(d.Activities, id, func(a Activity) (Activity, error) {
		a.Title = form.Title
		a.Type = form.Type
		a.Description = form.Description
		a.Duration = form.Duration
		return a, nil
	})
	if err != nil {
		return d, wrapNotFound(err, "activity %q", id)
	}
	d.Activities = activities
	return d, nil
}

func DeleteActivity(d AppData, id string) (AppData, error) {
	activities, err := removeByID(d.Activities, id)
	if err != nil {
		return d, wrapNotFound(err, "activity %q", id)
	}
	d.Activities = activities
	return d, nil
}
