package repoconstants

const (
	PERSONA_COLLECTION = "Personas"
)
