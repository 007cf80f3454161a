package logbook

import (
	"github.com/pkg/errors"
)

// View is one of the screens of the logbook.
type View string

const (
	ViewDashboard  View = "DASHBOARD"
	ViewClasses    View = "CLASSES"
	ViewStudents   View = "STUDENTS"
	ViewProgram    View = "PROGRAM"
	ViewLessons    View = "LESSONS"
	ViewActivities View = "ACTIVITIES"
)

var (
	Views = []View{ViewDashboard, ViewClasses, ViewStudents, ViewProgram, ViewLessons, ViewActivities}

	// errors
	ErrUnknownView     = errors.New("vue inconnue")
	ErrNoClassSelected = errors.New("aucune classe sélectionnée")
)

func (v View) Valid() bool {
	for _, view := range Views {
		if v == view {
			return true
		}
	}
	return false
}

// ViewState is the navigation state. It lives in memory only.
type ViewState struct {
	ActiveView      View   `json:"activeView"`
	SelectedClassID string `json:"selectedClassId,omitempty"`
}

func initialView() ViewState {
	return ViewState{ActiveView: ViewDashboard}
}

func (svc *Service) View() ViewState {
	svc.viewMu.Lock()
	defer svc.viewMu.Unlock()
	return svc.view
}

// Navigate switches the active view. The selected class is kept.
func (svc *Service) Navigate(view View) (ViewState, error) {
	if !view.Valid() {
		return ViewState{}, errors.Wrapf(ErrUnknownView, "%q", view)
	}
	svc.viewMu.Lock()
	defer svc.viewMu.Unlock()
	svc.view.ActiveView = view
	return svc.view, nil
}

// SelectClass focuses a class and always switches to the students view.
func (svc *Service) SelectClass(classID string) (ViewState, error) {
	if _, err := svc.FindClass(classID); err != nil {
		return ViewState{}, err
	}
	svc.viewMu.Lock()
	defer svc.viewMu.Unlock()
	svc.view = ViewState{ActiveView: ViewStudents, SelectedClassID: classID}
	return svc.view, nil
}

// SelectedClass resolves the selected class against the current document.
// A class deleted after being selected counts as no selection.
func (svc *Service) SelectedClass() (Class, error) {
	classID := svc.View().SelectedClassID
	if classID == "" {
		return Class{}, ErrNoClassSelected
	}
	cls, ok := findByID(svc.store.Get().Classes, classID)
	if !ok {
		return Class{}, ErrNoClassSelected
	}
	return cls, nil
}
