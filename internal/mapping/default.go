package mapping

import "trip-reconciliation/internal/domain"

func both(cummins, detroit Rule) map[string]Rule {
	return map[string]Rule{
		domain.VendorCummins.String(): cummins,
		domain.VendorDetroit.String(): detroit,
	}
}

var defaultEntries = []Entry{
	{Metric: domain.MetricTripDistance, Vendors: both(Direct("Trip Distance"), Direct("Trip Distance"))},
	{Metric: domain.MetricDriveDistance, Vendors: both(Direct("Drive Distance"), Direct("Drive Distance"))},
	{Metric: domain.MetricTopGearDistance, Vendors: both(Direct("Top Gear Distance"), Direct("Top Gear Distance"))},
	{Metric: domain.MetricGearDownDistance, Vendors: both(Direct("Gear Down Distance"), Direct("Top Gear -1 Distance"))},
	{Metric: domain.MetricCruiseDistance, Vendors: both(Direct("Trip Cruise Distance"), Direct("Cruise Distance"))},
	{Metric: domain.MetricTripFuel, Vendors: both(Direct("Trip Fuel Used"), Direct("Trip Fuel"))},
	{Metric: domain.MetricDriveFuel, Vendors: both(Direct("Drive Fuel Used"), Direct("Drive Fuel"))},
	{Metric: domain.MetricIdleFuel, Vendors: both(Direct("Idle Fuel Used"), Direct("Idle Fuel"))},
	{Metric: domain.MetricDEFUsed, Vendors: both(Direct("Trip Diesel Exhaust Fluid Used"), Compound("Trip Def H / Def Fuel"))},
	{Metric: domain.MetricTripTime, Vendors: both(Direct("Trip Time"), Direct("Trip Time"))},
	{Metric: domain.MetricDriveTime, Vendors: both(Direct("Trip Drive Time"), Direct("Drive Time"))},
	{Metric: domain.MetricIdleTime, Vendors: both(Direct("Trip Idle Time"), Direct("Idle Time"))},
	{Metric: domain.MetricTopGearTime, Vendors: both(Direct("Trip Top Gear Time"), Direct("Top Gear Time"))},
	{Metric: domain.MetricCruiseTime, Vendors: both(Direct("Trip Cruise Time"), Direct("Cruise Time"))},
	{Metric: domain.MetricOverspeedTime, Vendors: both(Sum("Overspeed 1 Time", "Overspeed 2 Time"), Sum("Over Speed A Time", "Over Speed B Time"))},
	{Metric: domain.MetricMaxSpeed, Vendors: both(Direct("Maximum Vehicle Speed"), Direct("Peak Road Speed"))},
	{Metric: domain.MetricMaxRPM, Vendors: both(Direct("Maximum Engine Speed"), Direct("Peak Engine RPM"))},
	{Metric: domain.MetricAverageSpeed, Vendors: both(Direct("Average Vehicle Speed"), Direct("Avg Vehicle Speed"))},
	{Metric: domain.MetricTripEconomy, Vendors: both(Direct("Trip Average Fuel Economy"), Direct("Trip Economy"))},
	{Metric: domain.MetricDriveEconomy, Vendors: both(Direct("Drive Average Fuel Economy"), Direct("Driving Economy"))},
	{Metric: domain.MetricLoadFactor, Vendors: both(Direct("Average Engine Load"), Direct("Drive Average Load Factor"))},
	// Detroit counts are summed from A and B like the overspeed time, not read from one combined "A/B Count" tag.
	{Metric: domain.MetricOverspeedEvents, Vendors: both(Direct("Overspeed Events"), Sum("Over Speed A Count", "Over Speed B Count"))},
	{Metric: domain.MetricBrakeEvents, Vendors: both(Direct("Sudden Deceleration Counts"), Compound("Brake Count / Firm brake count"))},
	{Metric: domain.MetricCoastTime, Vendors: both(Direct("Coast Time"), Direct("Coast Time"))},
	{Metric: domain.MetricPTOTime, Vendors: both(Direct("Total PTO Time"), Direct("VSG (PTO) Time"))},
	{Metric: domain.MetricPTOFuel, Vendors: both(Direct("Total PTO Fuel Used"), Direct("VSG (PTO) Fuel"))},
}

var defaultTable = MustNew(defaultEntries)

// Default returns the built-in table covering all canonical metrics for
// both supported vendors.
func Default() *Table {
	return defaultTable
}
