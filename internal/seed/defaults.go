package seed

import "github.com/viadorassan/viador/backend/go-services/internal/models"

// DefaultContactInfo is the business contact card.
func DefaultContactInfo() models.ContactInfo {
	return models.ContactInfo{
		Name:        models.BusinessName,
		Phone:       "86 884 4903",
		Email:       "viadorassan@gmail.com",
		Locations:   []string{"Maputo", "Matola"},
		Slogan:      "Conhecimento ao seu alcance",
		Description: "Aulas e Explicações ao Domicílio",
	}
}

// DefaultServices lists the service offerings in display order.
func DefaultServices() []models.Service {
	return []models.Service{
		{
			Type:        models.ServiceTutoring,
			Title:       "Explicação Personalizada",
			Description: "Para alunos da 1ª à 10ª Classe",
			Features: []string{
				"Acompanhamento individual",
				"Preparação para exames e testes",
				"Apoio em todas as disciplinas",
				"Modalidade presencial ou ao domicílio",
			},
			Icon: "📚",
		},
		{
			Type:        models.ServiceComputerTraining,
			Title:       "Aulas de Informática ao Seu Ritmo",
			Description: "Pacotes personalizados: do básico ao avançado",
			Features: []string{
				"Foco prático e suporte total ao aluno",
				"Aulas presenciais ou ao domicílio",
				"Material didático incluído",
				"Certificado de conclusão",
			},
			Icon: "💻",
		},
	}
}

// DefaultCourses lists the IT catalog, one course per subject.
func DefaultCourses() []models.ITCourse {
	return []models.ITCourse{
		{
			Subject:     models.SubjectWord,
			Title:       "Microsoft Word",
			Description: "Formatação, cartas, trabalhos escolares",
			Level:       models.LevelBasic,
			Topics:      []string{"Formatação de texto", "Criação de documentos", "Tabelas e imagens", "Cartas e trabalhos"},
			Icon:        "📄",
		},
		{
			Subject:     models.SubjectPowerPoint,
			Title:       "Microsoft PowerPoint",
			Description: "Apresentações cativantes e profissionais",
			Level:       models.LevelBasic,
			Topics:      []string{"Criação de slides", "Animações", "Transições", "Apresentações profissionais"},
			Icon:        "📊",
		},
		{
			Subject:     models.SubjectExcel,
			Title:       "Microsoft Excel",
			Description: "Fórmulas, gráficos e planilhas inteligentes",
			Level:       models.LevelAdvanced,
			Topics:      []string{"Fórmulas avançadas", "Gráficos dinâmicos", "Tabelas dinâmicas", "Análise de dados"},
			Icon:        "📈",
		},
		{
			Subject:     models.SubjectNetBeans,
			Title:       "NetBeans",
			Description: "Introdução à programação em Java",
			Level:       models.LevelAdvanced,
			Topics:      []string{"Fundamentos Java", "Programação orientada a objetos", "Interface gráfica", "Projetos práticos"},
			Icon:        "☕",
		},
		{
			Subject:     models.SubjectQGIS,
			Title:       "QGIS",
			Description: "Iniciação ao SIG (Sistema de Informação Geográfica)",
			Level:       models.LevelAdvanced,
			Topics:      []string{"Introdução ao SIG", "Mapas digitais", "Análise espacial", "Projetos geográficos"},
			Icon:        "🗺️",
		},
	}
}
