package services

import (
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/shopspring/decimal"
)

func usd(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sampleCatalog mirrors data/catalog.json
func sampleCatalog() *models.Catalog {
	return &models.Catalog{
		CPUs: []models.CPU{
			{ID: "cpu-r5-5600", Name: "Ryzen 5 5600", Socket: "AM4", MemoryType: "DDR4", TDPW: 65, Tier: 2, GamingScore: 100, Price: usd("130")},
			{ID: "cpu-r5-7600", Name: "Ryzen 5 7600", Socket: "AM5", MemoryType: "DDR5", TDPW: 65, Tier: 3, GamingScore: 130, Price: usd("180")},
			{ID: "cpu-r7-5800x3d", Name: "Ryzen 7 5800X3D", Socket: "AM4", MemoryType: "DDR4", TDPW: 105, Tier: 4, GamingScore: 150, Price: usd("290")},
			{ID: "cpu-r7-7800x3d", Name: "Ryzen 7 7800X3D", Socket: "AM5", MemoryType: "DDR5", TDPW: 120, Tier: 5, GamingScore: 190, Price: usd("400")},
			{ID: "cpu-i3-12100f", Name: "Core i3-12100F", Socket: "LGA1700", MemoryType: "DDR4", TDPW: 58, Tier: 1, GamingScore: 60, Price: usd("90")},
		},
		GPUs: []models.GPU{
			{ID: "gpu-rx6600", Name: "Radeon RX 6600", Tier: 2, TDPW: 132, LengthMM: 190, Perf1080: 100, Perf1440: 70, Price: usd("200")},
			{ID: "gpu-rtx3060", Name: "GeForce RTX 3060", Tier: 2, TDPW: 170, LengthMM: 242, Perf1080: 110, Perf1440: 80, Price: usd("290")},
			{ID: "gpu-rx7700xt", Name: "Radeon RX 7700 XT", Tier: 3, TDPW: 245, LengthMM: 280, Perf1080: 160, Perf1440: 150, Price: usd("420")},
			{ID: "gpu-rtx4070", Name: "GeForce RTX 4070", Tier: 4, TDPW: 200, LengthMM: 310, Perf1080: 180, Perf1440: 150, Price: usd("550")},
			{ID: "gpu-rtx4090", Name: "GeForce RTX 4090", Tier: 5, TDPW: 450, LengthMM: 340, Perf1080: 300, Perf1440: 280, Price: usd("1600")},
		},
		Motherboards: []models.Motherboard{
			{ID: "mb-b550m", Name: "B550M Pro", Socket: "AM4", MemoryType: "DDR4", FormFactor: "mATX", M2Slots: 2, Price: usd("100")},
			{ID: "mb-b550-atx", Name: "B550 Gaming ATX", Socket: "AM4", MemoryType: "DDR4", FormFactor: "ATX", M2Slots: 2, USBCHeader: true, Price: usd("135")},
			{ID: "mb-x570", Name: "X570 Creator", Socket: "AM4", MemoryType: "DDR4", FormFactor: "ATX", M2Slots: 3, USBCHeader: true, Price: usd("220")},
			{ID: "mb-b650", Name: "B650 ATX", Socket: "AM5", MemoryType: "DDR5", FormFactor: "ATX", M2Slots: 2, USBCHeader: true, Price: usd("170")},
			{ID: "mb-b760m", Name: "B760M DDR4", Socket: "LGA1700", MemoryType: "DDR4", FormFactor: "mATX", M2Slots: 2, Price: usd("110")},
		},
		Memory: []models.Memory{
			{ID: "ram-ddr4-16", Name: "16GB DDR4-3200", Type: "DDR4", CapacityGB: 16, Price: usd("40")},
			{ID: "ram-ddr4-32", Name: "32GB DDR4-3600", Type: "DDR4", CapacityGB: 32, Price: usd("70")},
			{ID: "ram-ddr5-16", Name: "16GB DDR5-5600", Type: "DDR5", CapacityGB: 16, Price: usd("55")},
			{ID: "ram-ddr5-32", Name: "32GB DDR5-6000", Type: "DDR5", CapacityGB: 32, Price: usd("95")},
		},
		Storage: []models.Storage{
			{ID: "ssd-500", Name: "500GB NVMe", CapacityGB: 500, Price: usd("35")},
			{ID: "ssd-1tb", Name: "1TB NVMe", CapacityGB: 1000, Price: usd("55")},
			{ID: "ssd-2tb", Name: "2TB NVMe", CapacityGB: 2000, Price: usd("110")},
		},
		PSUs: []models.PSU{
			{ID: "psu-550", Name: "550W Bronze", Wattage: 550, Price: usd("55")},
			{ID: "psu-650", Name: "650W Bronze", Wattage: 650, Price: usd("70")},
			{ID: "psu-750", Name: "750W Gold", Wattage: 750, Price: usd("90")},
			{ID: "psu-850", Name: "850W Gold", Wattage: 850, Price: usd("120")},
			{ID: "psu-1000", Name: "1000W Platinum", Wattage: 1000, Price: usd("180")},
		},
		Cases: []models.Case{
			{ID: "case-mini", Name: "Compact mATX", Supports: []string{"mATX", "ITX"}, GPUMaxMM: 300, CoolerMaxMM: 160, Price: usd("60")},
			{ID: "case-atx-budget", Name: "Budget ATX", Supports: []string{"ATX", "mATX"}, GPUMaxMM: 330, CoolerMaxMM: 155, Price: usd("70")},
			{ID: "case-atx-airflow", Name: "Airflow ATX", Supports: []string{"ATX", "mATX", "ITX"}, GPUMaxMM: 360, CoolerMaxMM: 170, Price: usd("95")},
		},
		Coolers: []models.Cooler{
			{ID: "cooler-tower-basic", Name: "Basic Tower", Type: "tower", HeightMM: 150, Price: usd("25")},
			{ID: "cooler-tower-big", Name: "Big Tower", Type: "tower", HeightMM: 158, Price: usd("35")},
			{ID: "cooler-dual", Name: "Dual Tower", Type: "dual-tower", HeightMM: 165, Price: usd("90")},
			{ID: "cooler-low-profile", Name: "Low Profile", Type: "low-profile", HeightMM: 47, Price: usd("40")},
		},
	}
}

func gamingRequest(budget string, res models.Resolution, p models.Preference) models.BuildRequest {
	return models.BuildRequest{
		Budget:     usd(budget),
		UseCase:    models.UseCaseGaming,
		Resolution: res,
		Preference: p,
	}
}
