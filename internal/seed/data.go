package seed

import (
	"time"

	"github.com/iamagencia/crmdash/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// coreClients are the agency's three known accounts, added on every
// startup whether or not the spreadsheet answers.
var coreClients = []model.Client{
	{
		Name:         "Histocell",
		Email:        "contacto@histocell.cl",
		Phone:        "+56 55 123 4567",
		City:         "Antofagasta",
		Industry:     "Laboratorio Anatomía Patológica",
		Status:       model.ClientActive,
		MonthlyValue: 600000,
		Registered:   date(2024, 1, 15),
		LastContact:  date(2024, 3, 28),
		Website:      "histocell.cl",
		Services:     "Marketing Integral, Redes Sociales, Web, Diseños, Portal Pacientes, SEO",
		Notes:        "Cliente VIP - Marketing integral: redes sociales, web, diseños, portal pacientes",
	},
	{
		Name:         "Dr. José Prieto",
		Email:        "info@doctorjoseprieto.cl",
		Phone:        "+56 9 8765 4321",
		City:         "Antofagasta",
		Industry:     "Centro Médico Integral",
		Status:       model.ClientActive,
		MonthlyValue: 1000000,
		Registered:   date(2024, 1, 25),
		LastContact:  date(2024, 3, 27),
		Website:      "doctorjoseprieto.cl",
		Services:     "Marketing Integral, Gestión Administrativa Comercial, Centro Integral",
		Notes:        "Centro Médico Integral - Marketing + gestión administrativa comercial completa",
	},
	{
		Name:         "Cefes Garage",
		Email:        "contacto@cefesgarage.cl",
		Phone:        "+56 9 5555 5555",
		City:         "Antofagasta",
		Industry:     "Taller Mecánico Automotriz",
		Status:       model.ClientActive,
		MonthlyValue: 300000,
		Registered:   date(2024, 2, 1),
		LastContact:  date(2024, 3, 26),
		Website:      "cefesgarage.cl",
		Services:     "Proyecto Sitio Web, SEO Local, Google My Business",
		Notes:        "Taller mecánico - Proyecto sitio web en desarrollo",
	},
}

// prospects are the leads that ride along when the spreadsheet loads.
var prospects = []model.Client{
	{
		Name:         "Clínica Cumbres",
		Email:        "contacto@clinicacumbres.cl",
		Phone:        "+56 9 0000 0000",
		City:         "Antofagasta",
		Industry:     "Clínica",
		Status:       model.ClientProspect,
		MonthlyValue: 800000,
		Registered:   date(2024, 3, 1),
		LastContact:  date(2024, 3, 25),
		Website:      "clinicacumbres.cl",
		Services:     "Marketing Digital, SEO",
		Notes:        "Cliente potencial - Marketing a tu Puerta",
	},
	{
		Name:         "Centro Médico Norte",
		Email:        "info@centromediconorte.cl",
		Phone:        "+56 9 0000 0000",
		City:         "Antofagasta",
		Industry:     "Centro Médico",
		Status:       model.ClientProspect,
		MonthlyValue: 600000,
		Registered:   date(2024, 3, 1),
		LastContact:  date(2024, 3, 25),
		Services:     "Marketing Digital, SEO",
		Notes:        "Cliente potencial - Marketing a tu Puerta",
	},
}

// FallbackClients returns the dataset used when no spreadsheet data is
// available. Always the same three records, in the same order.
func FallbackClients() []model.Client {
	out := make([]model.Client, len(coreClients))
	copy(out, coreClients)
	return out
}

// Quotes returns the starting quote book, open pipeline plus the
// rejected quotes carrying a reconversion plan.
func Quotes() []model.Quote {
	return []model.Quote{
		{
			Client: "Histocell", Service: "Marketing Integral Mensual", Amount: 600000,
			Status: model.QuoteApproved, Issued: date(2024, 1, 10), Expires: date(2024, 2, 10),
			Probability: 100, Owner: "Juan Riquelme",
			Notes: "Marketing integral: redes sociales, web, diseños, portal pacientes - $600K/mes",
		},
		{
			Client: "Dr. José Prieto", Service: "Centro Médico Integral + Gestión Comercial", Amount: 1000000,
			Status: model.QuoteApproved, Issued: date(2024, 2, 15), Expires: date(2024, 3, 15),
			Probability: 100, Owner: "Juan Riquelme",
			Notes: "Centro médico integral: marketing + gestión administrativa comercial - $1M/mes",
		},
		{
			Client: "Cefes Garage", Service: "Proyecto Sitio Web", Amount: 300000,
			Status: model.QuoteApproved, Issued: date(2024, 2, 1), Expires: date(2024, 3, 1),
			Probability: 100, Owner: "Juan Riquelme",
			Notes: "Proyecto sitio web completo para taller mecánico - $300K proyecto",
		},
		{
			Client: "Hospital Antofagasta", Service: "Marketing Digital Integral", Amount: 1200000,
			Status: model.QuoteSent, Issued: date(2024, 3, 20), Expires: date(2024, 4, 20),
			Probability: 70, Owner: "Juan Riquelme",
			Notes: "Propuesta marketing digital hospital",
		},
		{
			Client: "Clínica Regional", Service: "Página Web + SEO", Amount: 750000,
			Status: model.QuotePending, Issued: date(2024, 3, 25), Expires: date(2024, 4, 15),
			Probability: 60, Owner: "Juan Riquelme",
			Notes: "Pendiente reunión presupuesto",
		},
		{
			Client: "CLINICENTRO", Service: "Sistema de gestión web", Amount: 25000,
			Status: model.QuoteRejected, Issued: date(2025, 7, 28), Owner: "Juan Riquelme",
			Notes:           "Contacto: Dr. Martinez - direccion@clinicentro.cl. Mostraron interés pero necesitan una propuesta más económica",
			RejectionReason: "Presupuesto muy alto para su budget actual",
			Alternative:     "Plan básico por $15,000",
			Reconversion:    85,
			Recontact:       date(2025, 8, 15),
		},
		{
			Client: "PLASTICA LASER", Service: "Sitio web corporativo", Amount: 18000,
			Status: model.QuoteRejected, Issued: date(2025, 7, 30), Owner: "Juan Riquelme",
			Notes:           "Contacto: Dra. Fernandez - contacto@plasticalaser.cl. Urgencia por lanzar antes de septiembre",
			RejectionReason: "Timeline de desarrollo muy extenso (12 semanas)",
			Alternative:     "MVP en 6 semanas por $12,000",
			Reconversion:    70,
			Recontact:       date(2025, 8, 10),
		},
		{
			Client: "NUEVA MASVIDA", Service: "Portal web institucional", Amount: 22000,
			Status: model.QuoteRejected, Issued: date(2025, 8, 1), Owner: "Juan Riquelme",
			Notes:           "Contacto: Sr. Rodriguez - gerencia@nuevamasvida.cl. Solo necesitan landing page + formularios básicos",
			RejectionReason: "Requieren menos funcionalidades que las propuestas",
			Alternative:     "Landing optimizada por $8,000",
			Reconversion:    90,
			Recontact:       date(2025, 8, 5),
		},
	}
}

// Projects returns the starting project board.
func Projects() []model.Project {
	return []model.Project{
		{Client: "Histocell", Name: "Portal Pacientes", Status: model.ProjectDevelopment, Progress: 75,
			Started: date(2024, 2, 1), Delivery: date(2024, 4, 1), Value: 850000,
			EstimatedHours: 120, WorkedHours: 90, Owner: "Juan Riquelme"},
		{Client: "Clínica Alemana", Name: "SEO Oncología", Status: model.ProjectCompleted, Progress: 100,
			Started: date(2024, 1, 15), Delivery: date(2024, 3, 15), Value: 600000,
			EstimatedHours: 80, WorkedHours: 80, Owner: "Juan Riquelme"},
		{Client: "Dr. José Prieto", Name: "Google Ads", Status: model.ProjectDevelopment, Progress: 60,
			Started: date(2024, 3, 1), Delivery: date(2024, 4, 15), Value: 400000,
			EstimatedHours: 60, WorkedHours: 36, Owner: "Juan Riquelme"},
		{Client: "Histocell", Name: "Dashboard Analytics", Status: model.ProjectCompleted, Progress: 100,
			Started: date(2024, 1, 20), Delivery: date(2024, 2, 20), Value: 300000,
			EstimatedHours: 40, WorkedHours: 40, Owner: "Juan Riquelme"},
		{Client: "Clínica Alemana", Name: "Rediseño Web", Status: model.ProjectPlanning, Progress: 25,
			Started: date(2024, 3, 15), Delivery: date(2024, 5, 1), Value: 1200000,
			EstimatedHours: 150, WorkedHours: 37, Owner: "Juan Riquelme"},
	}
}

// Activities returns the starting activity log, newest first.
func Activities() []model.Activity {
	type row struct {
		d    time.Time
		typ  model.ActivityType
		cli  string
		desc string
		next string
	}
	rows := []row{
		{date(2024, 3, 28), model.ActivityCall, "Histocell", "Seguimiento portal pacientes", "Llamada seguimiento"},
		{date(2024, 3, 27), model.ActivityEmail, "Hospital Antofagasta", "Envío propuesta marketing digital", "Esperar respuesta"},
		{date(2024, 3, 26), model.ActivityMeeting, "Clínica Alemana", "Reunión revisión SEO", "Implementar cambios"},
		{date(2024, 3, 25), model.ActivityEmail, "Dr. José Prieto", "Envío reporte Google Ads", "Continuar campaña"},
		{date(2024, 3, 24), model.ActivityCall, "Histocell", "Consulta sobre nuevos servicios", "Enviar cotización"},
		{date(2024, 3, 23), model.ActivityMeeting, "Centro Médico", "Presentación servicios", "Enviar propuesta"},
		{date(2024, 3, 22), model.ActivityEmail, "Lab Regional", "Seguimiento cotización", "Llamada de cierre"},
		{date(2024, 3, 21), model.ActivityCall, "Clínica Nueva", "Consulta técnica SEO", "Reunión técnica"},
		{date(2024, 3, 20), model.ActivityProposal, "Hospital Antofagasta", "Envío propuesta web", "Esperar decisión"},
		{date(2024, 3, 19), model.ActivityMeeting, "Histocell", "Reunión planificación", "Inicio desarrollo"},
	}
	acts := make([]model.Activity, len(rows))
	for i, r := range rows {
		acts[i] = model.Activity{
			Date:        r.d,
			Type:        r.typ,
			Client:      r.cli,
			Description: r.desc,
			Status:      model.ActivityCompleted,
			NextAction:  r.next,
		}
	}
	return acts
}
