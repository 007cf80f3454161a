package logbook

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/logbook/core"
)

const DefaultActivityDuration = 15 // minutes

// ClassForm contains the Class fields a user may set.
type ClassForm struct {
	Name     string `json:"name" validate:"required"`
	Level    string `json:"level" validate:"required"`
	Schedule string `json:"schedule"`
}

func (f *ClassForm) Validate(validate *validator.Validate) error {
	f.Name = core.CleanString(f.Name)
	f.Level = core.CleanString(f.Level)
	f.Schedule = core.CleanString(f.Schedule)
	return validate.Struct(f)
}

type StudentForm struct {
	Name string `json:"name" validate:"required"`
}

func (f *StudentForm) Validate(validate *validator.Validate) error {
	f.Name = core.CleanString(f.Name)
	return validate.Struct(f)
}

type NoteForm struct {
	Note string `json:"note" validate:"required"`
}

func (f *NoteForm) Validate(validate *validator.Validate) error {
	f.Note = core.CleanString(f.Note)
	return validate.Struct(f)
}

// ProgramForm edits the program header. Modules are managed one by one.
type ProgramForm struct {
	Title string   `json:"title" validate:"required"`
	Goals []string `json:"goals"`
}

func (f *ProgramForm) Validate(validate *validator.Validate) error {
	f.Title = core.CleanString(f.Title)
	f.Goals = core.CleanStrings(f.Goals)
	return validate.Struct(f)
}

type ModuleForm struct {
	Title  string   `json:"title" validate:"required"`
	Topics []string `json:"topics"`
}

func (f *ModuleForm) Validate(validate *validator.Validate) error {
	f.Title = core.CleanString(f.Title)
	f.Topics = core.CleanStrings(f.Topics)
	return validate.Struct(f)
}

type LessonForm struct {
	Title      string   `json:"title" validate:"required"`
	Date       string   `json:"date" validate:"required,datetime=2006-01-02"`
	Objectives []string `json:"objectives"`
	Materials  []string `json:"materials"`
	Procedure  string   `json:"procedure"`
	Notes      string   `json:"notes"`
}

// setDefaults fills what a blank "new lesson" form shows.
func (f *LessonForm) setDefaults() {
	if core.CleanString(f.Date) == "" {
		f.Date = nowFunc().Format(LessonDateLayout)
	}
}

// keep fills the fields left out of an edit with the lesson's current values.
func (f *LessonForm) keep(l Lesson) {
	if core.CleanString(f.Date) == "" {
		f.Date = l.Date
	}
}

func (f *LessonForm) Validate(validate *validator.Validate) error {
	f.Title = core.CleanString(f.Title)
	f.Date = core.CleanString(f.Date)
	f.Objectives = core.CleanStrings(f.Objectives)
	f.Materials = core.CleanStrings(f.Materials)
	f.Procedure = core.CleanString(f.Procedure)
	f.Notes = core.CleanString(f.Notes)
	return validate.Struct(f)
}

type ActivityForm struct {
	Title       string `json:"title" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description"`
	Duration    int    `json:"duration" validate:"required,min=1"`
}

func (f *ActivityForm) setDefaults() {
	if f.Duration == 0 {
		f.Duration = DefaultActivityDuration
	}
}

// keep fills the fields left out of an edit with the activity's current values.
func (f *ActivityForm) keep(a Activity) {
	if f.Duration == 0 {
		f.Duration = a.Duration
	}
}

func (f *ActivityForm) Validate(validate *validator.Validate) error {
	f.Title = core.CleanString(f.Title)
	f.Type = core.CleanString(f.Type)
	f.Description = core.CleanString(f.Description)
	return validate.Struct(f)
}
