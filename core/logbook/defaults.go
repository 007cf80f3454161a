package logbook

// DefaultData returns the document used when nothing (valid) has been persisted yet.
func DefaultData() AppData {
	return AppData{
		Classes: []Class{},
		Program: Program{
			Title: "Programme Annuel FLE",
			Goals: []string{
				"Communiquer dans des situations de la vie quotidienne",
				"Comprendre des documents authentiques simples",
				"Découvrir la culture francophone",
			},
			Modules: []ProgramModule{
				{
					ID:     "module-1",
					Title:  "Se présenter et présenter quelqu'un",
					Topics: []string{"Salutations", "Nationalités", "Professions", "Verbes être et avoir"},
				},
				{
					ID:     "module-2",
					Title:  "La vie quotidienne",
					Topics: []string{"Les loisirs", "L'heure", "Verbes pronominaux"},
				},
			},
		},
		Lessons: []Lesson{
			{
				ID:         "lesson-1",
				Title:      "Premier cours : faisons connaissance",
				Date:       "2024-09-02",
				Objectives: []string{"Se présenter", "Épeler son nom"},
				Materials:  []string{"Tableau", "Fiches prénoms"},
				Procedure:  "Tour de table, jeu de l'alphabet, écoute d'un dialogue.",
				Notes:      "Devoirs : écrire une courte présentation.",
			},
		},
		Activities: []Activity{
			{
				ID:          "activity-1",
				Title:       "Le jeu du portrait",
				Type:        "Brise-glace",
				Description: "Par deux, les apprenants s'interviewent puis présentent leur partenaire à la classe.",
				Duration:    20,
			},
		},
	}
}
