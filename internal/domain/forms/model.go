package forms

import "time"

// Valores por defecto al abrir y al resetear el formulario.
// "00" parsea a 0; con start == end la curva queda degenerada, es lo esperado.
const (
	DefaultDose            = "00"
	DefaultEliminationRate = "0.0"
	DefaultTimeStart       = "00"
	DefaultTimeEnd         = "00"
	DefaultIntervals       = "00"
)

// Fields son los cinco campos de texto libre, tal cual los escribe el usuario.
type Fields struct {
	Dose            string // Drug Dose (mg)
	EliminationRate string // Elimination Rate (per hour)
	TimeStart       string
	TimeEnd         string
	Intervals       string // cantidad de muestras
}

func DefaultFields() Fields {
	return Fields{
		Dose:            DefaultDose,
		EliminationRate: DefaultEliminationRate,
		TimeStart:       DefaultTimeStart,
		TimeEnd:         DefaultTimeEnd,
		Intervals:       DefaultIntervals,
	}
}

// Form es una sesión de formulario (el equivalente a la ventana).
type Form struct {
	ID     string
	Fields Fields

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DialogKind define el tipo de diálogo modal.
type DialogKind string

const (
	DialogError DialogKind = "error"
	DialogInfo  DialogKind = "info"
)

const (
	InvalidInputMessage = "Please enter valid numerical values."
	ResetTitle          = "Reset"
	ResetMessage        = "All fields have been reset."
)

// Dialog es lo que la UI muestra como ventana modal.
type Dialog struct {
	Kind    DialogKind
	Title   string
	Message string
}

func InvalidInputDialog() Dialog {
	return Dialog{Kind: DialogError, Title: "Error", Message: InvalidInputMessage}
}

func ResetDialog() Dialog {
	return Dialog{Kind: DialogInfo, Title: ResetTitle, Message: ResetMessage}
}

// ErrorDialog envuelve cualquier otro error como diálogo de error.
func ErrorDialog(err error) Dialog {
	return Dialog{Kind: DialogError, Title: "Error", Message: err.Error()}
}
