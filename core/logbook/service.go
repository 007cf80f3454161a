package logbook

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/logbook/core"
)

// Service is the only entry point used by the api and admin apps.
// Every mutation validates its form, runs a reducer through the Store and returns
// the resulting item.
type Service struct {
	store     *Store
	validate  *validator.Validate
	generator IdeaGenerator // nil when no API key is configured
	logger    core.Logger

	viewMu sync.Mutex
	view   ViewState

	ideasMu sync.Mutex
	ideas   IdeaBatch
}

func NewService(store *Store, validate *validator.Validate, generator IdeaGenerator, logger core.Logger) *Service {
	return &Service{
		store:     store,
		validate:  validate,
		generator: generator,
		logger:    logger,
		view:      initialView(),
		ideas:     IdeaBatch{Ideas: []Idea{}},
	}
}

// Data returns a copy of the whole document.
func (svc *Service) Data() AppData {
	return svc.store.Get()
}

// Reset replaces the document with DefaultData.
func (svc *Service) Reset(ctx context.Context) error {
	if err := svc.store.Replace(ctx, DefaultData()); err != nil {
		return errors.Wrap(err, "resetting document")
	}
	svc.viewMu.Lock()
	svc.view = initialView()
	svc.viewMu.Unlock()
	return nil
}

// Classes

func (svc *Service) Classes() []Class {
	return svc.store.Get().Classes
}

func (svc *Service) FindClass(id string) (Class, error) {
	cls, ok := findByID(svc.store.Get().Classes, id)
	if !ok {
		return Class{}, errors.Wrapf(ErrNotFound, "class %q", id)
	}
	return cls, nil
}

func (svc *Service) CreateClass(ctx context.Context, form ClassForm) (Class, error) {
	if err := form.Validate(svc.validate); err != nil {
		return Class{}, err
	}
	cls := Class{
		ID:       NewID(KindClass),
		Name:     form.Name,
		Level:    form.Level,
		Schedule: form.Schedule,
		Students: []Student{},
	}
	if _, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		return AddClass(d, cls), nil
	}); err != nil {
		return Class{}, err
	}
	return cls, nil
}

func (svc *Service) UpdateClass(ctx context.Context, id string, form ClassForm) (Class, error) {
	if err := form.Validate(svc.validate); err != nil {
		return Class{}, err
	}
	d, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		return UpdateClass(d, id, form)
	})
	if err != nil {
		return Class{}, err
	}
	cls, _ := findByID(d.Classes, id)
	return cls, nil
}

// DeleteClass removes the class and its students. Callers must have asked for confirmation.
func (svc *Service) DeleteClass(ctx context.Context, id string) error {
	_, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		return DeleteClass(d, id)
	})
	return err
}

// Students

func (svc *Service) Students(classID string) ([]Student, error) {
	cls, err := svc.FindClass(classID)
	if err != nil {
		return nil, err
	}
	return cls.Students, nil
}

func (svc *Service) FindStudent(classID, studentID string) (Student, error) {
	students, err := svc.Students(classID)
	if err != nil {
		return Student{}, err
	}
	st, ok := findByID(students, studentID)
	if !ok {
		return Student{}, errors.Wrapf(ErrNotFound, "student %q", studentID)
	}
	return st, nil
}

func (svc *Service) CreateStudent(ctx context.Context, classID string, form StudentForm) (Student, error) {
	if err := form.Validate(svc.validate); err != nil {
		return Student{}, err
	}
	st := Student{ID: NewID(KindStudent), Name: form.Name, Notes: []StudentNote{}}
	if _, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		return AddStudent(d, classID, st)
	}); err != nil {
		return Student{}, err
	}
	return st, nil
}

func (svc *Service) UpdateStudent(ctx context.Context, classID, studentID string, form StudentForm) (Student, error) {
	if err := form.Validate(svc.validate); err != nil {
		return Student{}, err
	}
	if _, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		return UpdateStudent(d, classID, studentID, form)
	}); err != nil {
		return Student{}, err
	}
	return svc.FindStudent(classID, studentID)
}

func (svc *Service) DeleteStudent(ctx context.Context, classID, studentID string) error {
	_, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		return DeleteStudent(d, classID, studentID)
	})
	return err
}

// Notes

// AddNote records a follow-up note dated today (local time); it becomes the student's first note.
func (svc *Service) AddNote(ctx context.Context, classID, studentID string, form NoteForm) (StudentNote, error) {
	if err := form.Validate(svc.validate); err != nil {
		return StudentNote{}, err
	}
	now := nowFunc()
	createdAt := now.UTC().Truncate(time.Second)
	note := StudentNote{
		ID:        NewID(KindNote),
		Date:      now.Format(NoteDateLayout), // local calendar day
		Note:      form.Note,
		CreatedAt: &createdAt,
	}
	if _, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		return AddNote(d, classID, studentID, note)
	}); err != nil {
		return StudentNote{}, err
	}
	return note, nil
}

func (svc *Service) DeleteNote(ctx context.Context, classID, studentID, noteID string) error {
	_, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		return DeleteNote(d, classID, studentID, noteID)
	})
	return err
}

// Program

func (svc *Service) Program() Program {
	return svc.store.Get().Program
}

func (svc *Service) UpdateProgram(ctx context.Context, form ProgramForm) (Program, error) {
	if err := form.Validate(svc.validate); err != nil {
		return Program{}, err
	}
	d, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		return UpdateProgram(d, form), nil
	})
	if err != nil {
		return Program{}, err
	}
	return d.Program, nil
}

func (svc *Service) CreateModule(ctx context.Context, form ModuleForm) (ProgramModule, error) {
	if err := form.Validate(svc.validate); err != nil {
		return ProgramModule{}, err
	}
	m := ProgramModule{ID: NewID(KindModule), Title: form.Title, Topics: form.Topics}
	if _, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		return AddModule(d, m), nil
	}); err != nil {
		return ProgramModule{}, err
	}
	return m, nil
}

func (svc *Service) UpdateModule(ctx context.Context, id string, form ModuleForm) (ProgramModule, error) {
	if err := form.Validate(svc.validate); err != nil {
		return ProgramModule{}, err
	}
	d, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		return UpdateModule(d, id, form)
	})
	if err != nil {
		return ProgramModule{}, err
	}
	m, _ := findByID(d.Program.Modules, id)
	return m, nil
}

func (svc *Service) DeleteModule(ctx context.Context, id string) error {
	_, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		return DeleteModule(d, id)
	})
	return err
}

// Lessons

var lessonOrderings = map[string]func(a, b Lesson) int{
	"date":  func(a, b Lesson) int { return strings.Compare(a.Date, b.Date) },
	"title": func(a, b Lesson) int { return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)) },
}

// Lessons lists lessons in the order they were planned, or sorted by the given
// orderings (fields "date" and "title"). Unknown fields are ignored.
func (svc *Service) Lessons(orderings ...core.Ordering) []Lesson {
	lessons := svc.store.Get().Lessons
	if len(orderings) == 0 {
		return lessons
	}
	sort.SliceStable(lessons, func(i, j int) bool {
		for _, ord := range orderings {
			cmp, ok := lessonOrderings[ord.Field]
			if !ok {
				continue
			}
			c := cmp(lessons[i], lessons[j])
			if !ord.Ascending {
				c = -c
			}
			if c != 0 {
				return c < 0
			}
		}
		return false
	})
	return lessons
}

func (svc *Service) CreateLesson(ctx context.Context, form LessonForm) (Lesson, error) {
	form.setDefaults()
	if err := form.Validate(svc.validate); err != nil {
		return Lesson{}, err
	}
	l := Lesson{
		ID:         NewID(KindLesson),
		Title:      form.Title,
		Date:       form.Date,
		Objectives: form.Objectives,
		Materials:  form.Materials,
		Procedure:  form.Procedure,
		Notes:      form.Notes,
	}
	if _, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		return AddLesson(d, l), nil
	}); err != nil {
		return Lesson{}, err
	}
	return l, nil
}

// UpdateLesson merges form over the lesson; a blank date keeps the current one.
func (svc *Service) UpdateLesson(ctx context.Context, id string, form LessonForm) (Lesson, error) {
	d, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		l, ok := findByID(d.Lessons, id)
		if !ok {
			return d, errors.Wrapf(ErrNotFound, "lesson %q", id)
		}
		form.keep(l)
		if err := form.Validate(svc.validate); err != nil {
			return d, err
		}
		return UpdateLesson(d, id, form)
	})
	if err != nil {
		return Lesson{}, err
	}
	l, _ := findByID(d.Lessons, id)
	return l, nil
}

func (svc *Service) DeleteLesson(ctx context.Context, id string) error {
	_, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		return DeleteLesson(d, id)
	})
	return err
}

// Activities

func (svc *Service) Activities() []Activity {
	return svc.store.Get().Activities
}

func (svc *Service) CreateActivity(ctx context.Context, form ActivityForm) (Activity, error) {
	form.setDefaults()
	if err := form.Validate(svc.validate); err != nil {
		return Activity{}, err
	}
	a := Activity{
		ID:          NewID(KindActivity),
		Title:       form.Title,
		Type:        form.Type,
		Description: form.Description,
		Duration:    form.Duration,
	}
	if _, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		return AddActivity(d, a), nil
	}); err != nil {
		return Activity{}, err
	}
	return a, nil
}

// UpdateActivity merges form over the activity; a zero duration keeps the current one.
func (svc *Service) UpdateActivity(ctx context.Context, id string, form ActivityForm) (Activity, error) {
	d, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		a, ok := findByID(d.Activities, id)
		if !ok {
			return d, errors.Wrapf(ErrNotFound, "activity %q", id)
		}
		form.keep(a)
		if err := form.Validate(svc.validate); err != nil {
			return d, err
		}
		return UpdateActivity(d, id, form)
	})
	if err != nil {
		return Activity{}, err
	}
	a, _ := findByID(d.Activities, id)
	return a, nil
}

func (svc *Service) DeleteActivity(ctx context.Context, id string) error {
	_, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		return DeleteActivity(d, id)
	})
	return err
}
