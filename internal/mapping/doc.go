// Package mapping holds the declarative table that maps each canonical trip
// metric to the vendor-specific parameter names it is read from.
//
// A Table is an ordinary value: extraction receives it by injection, tests
// can build smaller ones with New, and deployments can load a YAML file with
// Load. Each entry carries one Rule per vendor:
//
//	metrics:
//	  - metric: km_recorrido
//	    vendors:
//	      cummins: {kind: direct, name: Trip Distance}
//	      detroit: {kind: direct, name: Trip Distance}
//	  - metric: tiempo_exceso_velocidad
//	    vendors:
//	      cummins: {kind: sum, operands: [Overspeed 1 Time, Overspeed 2 Time]}
//	      detroit: {kind: sum, operands: [Over Speed A Time, Over Speed B Time]}
//	  - metric: eventos_frenado
//	    vendors:
//	      detroit: {kind: compound, name: Brake Count / Firm brake count}
package mapping
