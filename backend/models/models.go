// ABOUTME: Catalog record types for every component category
// ABOUTME: Records are immutable value objects loaded once per engine invocation

package models

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Category identifies one component slot of a build
type Category string

const (
	CategoryCPU         Category = "cpu"
	CategoryGPU         Category = "gpu"
	CategoryMotherboard Category = "motherboard"
	CategoryMemory      Category = "ram"
	CategoryStorage     Category = "storage"
	CategoryPSU         Category = "psu"
	CategoryCase        Category = "case"
	CategoryCooler      Category = "cooler"
)

// AllCategories lists the categories in catalog file order
var AllCategories = []Category{
	CategoryCPU,
	CategoryGPU,
	CategoryMotherboard,
	CategoryMemory,
	CategoryStorage,
	CategoryPSU,
	CategoryCase,
	CategoryCooler,
}

// Valid reports whether c is one of the eight known categories
func (c Category) Valid() bool {
	return slices.Contains(AllCategories, c)
}

// Memory types
const (
	MemoryDDR4 = "DDR4"
	MemoryDDR5 = "DDR5"
)

// Cooler classes used by the cooler selector
const (
	CoolerClassTower     = "tower"
	CoolerClassDualTower = "dual-tower"
)

// FormFactorATX is the full-size board form factor
const FormFactorATX = "ATX"

// CPU is a processor record
type CPU struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand,omitempty"`
	Socket      string          `json:"socket"`
	MemoryType  string          `json:"memoryType"`
	Cores       int             `json:"cores,omitempty"`
	Threads     int             `json:"threads,omitempty"`
	TDPW        int             `json:"tdpW"`
	Tier        int             `json:"tier"`
	GamingScore float64         `json:"gamingScore"`
	Price       decimal.Decimal `json:"price"`
}

// GPU is a graphics card record
type GPU struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Brand    string          `json:"brand,omitempty"`
	VRAMGB   int             `json:"vramGB,omitempty"`
	Tier     int             `json:"tier"`
	TDPW     int             `json:"tdpW"`
	LengthMM int             `json:"lengthMM"`
	Perf1080 float64         `json:"perf1080"`
	Perf1440 float64         `json:"perf1440"`
	Price    decimal.Decimal `json:"price"`
}

// Motherboard is a mainboard record
type Motherboard struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Brand      string          `json:"brand,omitempty"`
	Socket     string          `json:"socket"`
	Chipset    string          `json:"chipset,omitempty"`
	MemoryType string          `json:"memoryType"`
	FormFactor string          `json:"formFactor"`
	M2Slots    int             `json:"m2Slots"`
	USBCHeader bool            `json:"usbcHeader"`
	Tier       int             `json:"tier,omitempty"`
	Price      decimal.Decimal `json:"price"`
}

// Memory is a RAM kit record
type Memory struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Brand      string          `json:"brand,omitempty"`
	Type       string          `json:"type"`
	CapacityGB int             `json:"capacityGB"`
	Sticks     int             `json:"sticks,omitempty"`
	SpeedMT    int             `json:"speedMT,omitempty"`
	LatencyCL  int             `json:"latencyCL,omitempty"`
	Tier       int             `json:"tier,omitempty"`
	Price      decimal.Decimal `json:"price"`
}

// Storage is a drive record
type Storage struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Brand      string          `json:"brand,omitempty"`
	Type       string          `json:"type,omitempty"`
	CapacityGB int             `json:"capacityGB"`
	Tier       int             `json:"tier,omitempty"`
	Price      decimal.Decimal `json:"price"`
}

// PSU is a power supply record
type PSU struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand,omitempty"`
	Wattage     int             `json:"wattage"`
	Efficiency  string          `json:"efficiency,omitempty"`
	Modular     string          `json:"modular,omitempty"`
	QualityTier int             `json:"qualityTier,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// Case is a chassis record
type Case struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand,omitempty"`
	Supports    []string        `json:"supports"`
	GPUMaxMM    int             `json:"gpuMaxMm"`
	CoolerMaxMM int             `json:"coolerMaxMm"`
	Tier        int             `json:"tier,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// SupportsFormFactor reports whether the case accepts a board of the given form factor
func (c Case) SupportsFormFactor(formFactor string) bool {
	return slices.Contains(c.Supports, formFactor)
}

// Cooler is a CPU cooler record
type Cooler struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Brand    string          `json:"brand,omitempty"`
	Type     string          `json:"type"`
	HeightMM int             `json:"heightMm"`
	Tier     int             `json:"tier,omitempty"`
	Price    decimal.Decimal `json:"price"`
}

// Catalog maps every category to its ordered records.
// Record order carries no meaning beyond breaking ties.
type Catalog struct {
	CPUs         []CPU         `json:"cpu"`
	GPUs         []GPU         `json:"gpu"`
	Motherboards []Motherboard `json:"motherboard"`
	Memory       []Memory      `json:"ram"`
	Storage      []Storage     `json:"storage"`
	PSUs         []PSU         `json:"psu"`
	Cases        []Case        `json:"case"`
	Coolers      []Cooler      `json:"cooler"`
}

// Counts returns the number of records per category
func (c *Catalog) Counts() map[Category]int {
	return map[Category]int{
		CategoryCPU:         len(c.CPUs),
		CategoryGPU:         len(c.GPUs),
		CategoryMotherboard: len(c.Motherboards),
		CategoryMemory:      len(c.Memory),
		CategoryStorage:     len(c.Storage),
		CategoryPSU:         len(c.PSUs),
		CategoryCase:        len(c.Cases),
		CategoryCooler:      len(c.Coolers),
	}
}
