package repository

import "github.com/okian/laneboard/internal/domain/model"

// SeedClients returns the fixed initial board: twenty clients spread over
// the three lanes, each lane densely ranked from 1. Applied once, when a
// store opens empty; after that the board only changes through moves.
func SeedClients() []model.Client {
	return []model.Client{
		{ID: 1, Name: "Acme Logistics", Description: "Warehouse routing overhaul", Lane: model.LaneBacklog, Priority: 1},
		{ID: 2, Name: "Brightside Dental", Description: "Patient portal refresh", Lane: model.LaneBacklog, Priority: 2},
		{ID: 3, Name: "Cobalt Press", Description: "Subscription billing migration", Lane: model.LaneBacklog, Priority: 3},
		{ID: 4, Name: "Duneberry Farms", Description: "Harvest telemetry dashboard", Lane: model.LaneBacklog, Priority: 4},
		{ID: 5, Name: "Everline Studio", Description: "Asset pipeline cleanup", Lane: model.LaneBacklog, Priority: 5},
		{ID: 6, Name: "Fernway Clinic", Description: "Appointment reminder service", Lane: model.LaneBacklog, Priority: 6},
		{ID: 7, Name: "Gildcrest Bank", Description: "Statement export rewrite", Lane: model.LaneBacklog, Priority: 7},
		{ID: 8, Name: "Harbor & Sons", Description: "Fleet maintenance tracker", Lane: model.LaneBacklog, Priority: 8},
		{ID: 9, Name: "Ironwood Gym", Description: "Membership sync integration", Lane: model.LaneInProgress, Priority: 1},
		{ID: 10, Name: "Juniper Cafe", Description: "Loyalty program backend", Lane: model.LaneInProgress, Priority: 2},
		{ID: 11, Name: "Kestrel Air", Description: "Crew scheduling API", Lane: model.LaneInProgress, Priority: 3},
		{ID: 12, Name: "Lumen Labs", Description: "Experiment result archive", Lane: model.LaneInProgress, Priority: 4},
		{ID: 13, Name: "Marrow Books", Description: "Catalog search upgrade", Lane: model.LaneInProgress, Priority: 5},
		{ID: 14, Name: "Northgate Rail", Description: "Ticket kiosk firmware", Lane: model.LaneInProgress, Priority: 6},
		{ID: 15, Name: "Opaline Hotels", Description: "Booking engine audit", Lane: model.LaneInProgress, Priority: 7},
		{ID: 16, Name: "Pinefold Energy", Description: "Meter ingestion service", Lane: model.LaneComplete, Priority: 1},
		{ID: 17, Name: "Quarry Outfitters", Description: "Inventory reconciliation", Lane: model.LaneComplete, Priority: 2},
		{ID: 18, Name: "Riverbend Law", Description: "Document intake workflow", Lane: model.LaneComplete, Priority: 3},
		{ID: 19, Name: "Saltgrass Media", Description: "Ad delivery reporting", Lane: model.LaneComplete, Priority: 4},
		{ID: 20, Name: "Tellwright Co", Description: "Payroll export fixes", Lane: model.LaneComplete, Priority: 5},
	}
}
