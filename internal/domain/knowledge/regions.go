package knowledge

import "persona-engine/internal/domain/entities"

// Fixed gazetteer for the national market under study. City names are the
// canonical keys the persona-management collaborator stores.

var regionByCity = map[string]string{
	"Ciudad de México": "Centro",
	"Puebla":           "Centro",
	"Toluca":           "Centro",
	"Guadalajara":      "Occidente",
	"León":             "Bajío",
	"Querétaro":        "Bajío",
	"Monterrey":        "Norte",
	"Chihuahua":        "Norte",
	"Tijuana":          "Noroeste",
	"Mérida":           "Sureste",
	"Veracruz":         "Golfo",
}

const defaultRegion = "Centro"

// RegionForCity resolves a city to its region. Unknown cities map to the
// default region rather than failing.
func RegionForCity(city string) string {
	if region, ok := regionByCity[city]; ok {
		return region
	}
	return defaultRegion
}

// KnownCity reports whether a city belongs to the gazetteer.
func KnownCity(city string) bool {
	_, ok := regionByCity[city]
	return ok
}

var expressionsByRegion = map[string][]string{
	"Centro":    {"¿qué onda?", "está chido", "ahorita lo vemos", "no manches"},
	"Occidente": {"¡ey, claro!", "está con madre", "ocupo pensarlo", "¿edá?"},
	"Bajío":     {"¡ándale pues!", "está suave", "luego luego se nota"},
	"Norte":     {"¡órale!", "está bien padre", "no hay fijón", "al tiro"},
	"Noroeste":  {"¡arre!", "está curada", "fierro pariente"},
	"Sureste":   {"¡uay!", "está bonito", "hace rato que lo pienso"},
	"Golfo":     {"¡ajá!", "está bueno eso", "ahorita que se pueda"},
}

// ExpressionsForRegion returns the idiomatic expressions of a region.
// Never empty: unknown regions borrow the default region's expressions.
func ExpressionsForRegion(region string) []string {
	if expressions, ok := expressionsByRegion[region]; ok {
		return expressions
	}
	return expressionsByRegion[defaultRegion]
}

var economicContextByNSE = map[entities.NSETier]string{
	entities.NSEAB: "Tu hogar tiene un ingreso alto: puedes pagar servicios premium sin sacrificar otros gastos, " +
		"pero exiges calidad a la altura de lo que pagas.",
	entities.NSECPlus: "Tu hogar vive con holgura moderada: hay margen para gastos nuevos, " +
		"aunque los comparas contra vacaciones, colegiaturas y ahorro.",
	entities.NSEC: "Tu hogar llega bien a fin de mes con planeación: un gasto mensual nuevo se siente " +
		"y tiene que desplazar a otro para entrar al presupuesto.",
	entities.NSECMinus: "Tu hogar ajusta el gasto semana a semana: cualquier cobro mensual nuevo compite " +
		"directo con comida, transporte y escuela.",
	entities.NSEDPlus: "Tu hogar vive al día: un compromiso de pago fijo te da desconfianza porque " +
		"los ingresos varían de un mes a otro.",
	entities.NSEDE: "Tu hogar prioriza lo indispensable: casi todo gasto que no sea comida, renta o " +
		"pasajes se pospone o se descarta.",
}

const genericEconomicContext = "Tu hogar administra el gasto con cuidado y evalúa cada compra nueva " +
	"contra el presupuesto del mes."

// EconomicContext returns the NSE-tier sentence for the prompt.
func EconomicContext(nse entities.NSETier) string {
	if sentence, ok := economicContextByNSE[nse]; ok {
		return sentence
	}
	return genericEconomicContext
}
