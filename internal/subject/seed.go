package subject

// SampleSubjects returns the starter disciplines installed on first launch,
// so the app is explorable before any generation happens.
func SampleSubjects() []Subject {
	return []Subject{
		{
			Name:  "Inglês",
			Color: "#10B981",
			Roadmap: []string{
				"Gramática Básica (Verbo To Be)",
				"Vocabulário Essencial (Dia a dia)",
				"Present Simple vs Continuous",
				"Listening: Compreensão Básica",
				"Leitura e Interpretação",
				"Conversação Inicial",
			},
			TotalSessions: 5,
			XP:            450,
		},
		{
			Name:  "UX/UI Design",
			Color: "#F43F5E",
			Roadmap: []string{
				"Pesquisa com Usuários",
				"Wireframing e Baixa Fidelidade",
				"Prototipagem Interativa",
				"Hierarquia Visual e Tipografia",
				"Testes de Usabilidade",
				"Design System",
			},
			TotalSessions: 4,
			XP:            200,
		},
		{
			Name:  "Impressão 3D",
			Color: "#3B82F6",
			Roadmap: []string{
				"Tipos de Impressoras (FDM vs SLA)",
				"Materiais e Filamentos",
				"Modelagem 3D para Impressão",
				"Fatiamento (Slicing)",
				"Calibração e Manutenção",
				"Pós-processamento",
			},
		},
	}
}
