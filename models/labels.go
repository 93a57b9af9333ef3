package models

// User-facing text is pt-BR throughout the client; these tables mirror
// the labels the service's public site uses.

// ServiceTypeLabels maps wire values to display labels.
var ServiceTypeLabels = map[string]string{
	TypeLampReplacement:   "Troca de Lâmpadas",
	TypeRoadRepair:        "Tapa-Buraco",
	TypeGarbageCollection: "Coleta de Lixo",
	TypeStreetCleaning:    "Limpeza de Rua",
	TypeTreeTrimming:      "Poda de Árvores",
	TypeParkMaintenance:   "Manutenção de Parques",
}

// RequestStatusLabels maps wire values to display labels.
var RequestStatusLabels = map[string]string{
	StatusPending:    "Pendente",
	StatusInProgress: "Em andamento",
	StatusCompleted:  "Concluído",
}

// Status chip colors

type StatusColor int

const (
	ColorNeutral StatusColor = iota
	ColorWarning
	ColorSuccess
)

// StatusChipColor returns the chip color for a status: pending is
// neutral, in-progress is warning, completed is success. Unknown
// statuses fall back to neutral.
func StatusChipColor(status string) StatusColor {
	switch status {
	case StatusInProgress:
		return ColorWarning
	case StatusCompleted:
		return ColorSuccess
	default:
		return ColorNeutral
	}
}
