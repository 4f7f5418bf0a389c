package domain

// NotDetermined marks a metric, date or time that could not be read from the source.
const NotDetermined = "N/D"

// Metric is the canonical key of a trip metric. The value doubles as the storage column name.
type Metric string

const (
	MetricTripDistance     Metric = "km_recorrido"
	MetricDriveDistance    Metric = "distancia_conducida"
	MetricTopGearDistance  Metric = "distancia_top_gear"
	MetricGearDownDistance Metric = "distancia_cambio_bajo"
	MetricCruiseDistance   Metric = "distancia_crucero"
	MetricTripFuel         Metric = "combustible_viaje"
	MetricDriveFuel        Metric = "combustible_manejando"
	MetricIdleFuel         Metric = "combustible_ralenti"
	MetricDEFUsed          Metric = "def_usado"
	MetricTripTime         Metric = "tiempo_viaje"
	MetricDriveTime        Metric = "tiempo_manejando"
	MetricIdleTime         Metric = "tiempo_ralenti"
	MetricTopGearTime      Metric = "tiempo_top_gear"
	MetricCruiseTime       Metric = "tiempo_crucero"
	MetricOverspeedTime    Metric = "tiempo_exceso_velocidad"
	MetricMaxSpeed         Metric = "velocidad_maxima"
	MetricMaxRPM           Metric = "rpm_maxima"
	MetricAverageSpeed     Metric = "velocidad_promedio"
	MetricTripEconomy      Metric = "rendimiento_viaje"
	MetricDriveEconomy     Metric = "rendimiento_manejando"
	MetricLoadFactor       Metric = "factor_carga"
	MetricOverspeedEvents  Metric = "eventos_exceso_velocidad"
	MetricBrakeEvents      Metric = "eventos_frenado"
	MetricCoastTime        Metric = "tiempo_neutro_coasting"
	MetricPTOTime          Metric = "tiempo_pto"
	MetricPTOFuel          Metric = "combustible_pto"
)

// Metrics lists every canonical metric in report column order.
var Metrics = []Metric{
	MetricTripDistance,
	MetricDriveDistance,
	MetricTopGearDistance,
	MetricGearDownDistance,
	MetricCruiseDistance,
	MetricTripFuel,
	MetricDriveFuel,
	MetricIdleFuel,
	MetricDEFUsed,
	MetricTripTime,
	MetricDriveTime,
	MetricIdleTime,
	MetricTopGearTime,
	MetricCruiseTime,
	MetricOverspeedTime,
	MetricMaxSpeed,
	MetricMaxRPM,
	MetricAverageSpeed,
	MetricTripEconomy,
	MetricDriveEconomy,
	MetricLoadFactor,
	MetricOverspeedEvents,
	MetricBrakeEvents,
	MetricCoastTime,
	MetricPTOTime,
	MetricPTOFuel,
}

var metricLabels = map[Metric]string{
	MetricTripDistance:     "KM Recorrido",
	MetricDriveDistance:    "Distancia conducida",
	MetricTopGearDistance:  "Distancia en top gear",
	MetricGearDownDistance: "Distancia en cambio bajo",
	MetricCruiseDistance:   "Distancia en crucero",
	MetricTripFuel:         "Combustible del viaje",
	MetricDriveFuel:        "Combustible manejando",
	MetricIdleFuel:         "Combustible en ralentí",
	MetricDEFUsed:          "DEF usado",
	MetricTripTime:         "Tiempo del viaje",
	MetricDriveTime:        "Tiempo manejando",
	MetricIdleTime:         "Tiempo en ralentí",
	MetricTopGearTime:      "Tiempo en top gear",
	MetricCruiseTime:       "Tiempo en crucero",
	MetricOverspeedTime:    "Tiempo en exceso de velocidad",
	MetricMaxSpeed:         "Velocidad máxima",
	MetricMaxRPM:           "RPM máxima",
	MetricAverageSpeed:     "Velocidad promedio",
	MetricTripEconomy:      "Rendimiento del viaje",
	MetricDriveEconomy:     "Rendimiento manejando",
	MetricLoadFactor:       "Factor de carga",
	MetricOverspeedEvents:  "Eventos de exceso de velocidad",
	MetricBrakeEvents:      "Eventos de frenado",
	MetricCoastTime:        "Tiempo en neutro/coasting",
	MetricPTOTime:          "Tiempo en PTO",
	MetricPTOFuel:          "Combustible PTO",
}

// Label returns the display name used in exported reports.
func (m Metric) Label() string {
	if l, ok := metricLabels[m]; ok {
		return l
	}
	return string(m)
}

// IsCanonical reports whether m is one of the canonical metrics.
func (m Metric) IsCanonical() bool {
	_, ok := metricLabels[m]
	return ok
}

// MetricSet holds one textual value per metric: a number or NotDetermined.
type MetricSet map[Metric]string

// Complete returns a copy of s that carries every canonical metric,
// filling the ones s lacks with NotDetermined. Non-canonical keys are dropped.
func (s MetricSet) Complete() MetricSet {
	out := make(MetricSet, len(Metrics))
	for _, m := range Metrics {
		v, ok := s[m]
		if !ok || v == "" {
			v = NotDetermined
		}
		out[m] = v
	}
	return out
}
