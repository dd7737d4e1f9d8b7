// ABOUTME: Structured warning and reason variants attached to a build
// ABOUTME: Text is rendered by Message() only when a build is presented

package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Severity grades a warning
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// WarningKind tags the variant of a Warning
type WarningKind string

const (
	WarningOverBudget      WarningKind = "over_budget"
	WarningPSULoadHigh     WarningKind = "psu_load_high"
	WarningPSUUndersized   WarningKind = "psu_undersized"
	WarningFormFactor      WarningKind = "form_factor"
	WarningGPUClearance    WarningKind = "gpu_clearance"
	WarningCoolerClearance WarningKind = "cooler_clearance"
)

// Warning is an advisory about budget, thermal, electrical or clearance risk.
// Only the payload fields of its Kind are set.
type Warning struct {
	Kind     WarningKind      `json:"kind"`
	Severity Severity         `json:"severity"`
	Overage  *decimal.Decimal `json:"overage,omitempty"`
	LoadW    int              `json:"load_w,omitempty"`
	RatedW   int              `json:"rated_w,omitempty"`
	MinimumW int              `json:"minimum_w,omitempty"`
	LoadPct  float64          `json:"load_pct,omitempty"`
	SizeMM   int              `json:"size_mm,omitempty"`
	LimitMM  int              `json:"limit_mm,omitempty"`

	FormFactor string   `json:"form_factor,omitempty"`
	Supports   []string `json:"supports,omitempty"`
}

// OverBudget builds the over-budget variant
func OverBudget(overage decimal.Decimal) Warning {
	return Warning{Kind: WarningOverBudget, Severity: SeverityWarning, Overage: &overage}
}

// PSULoadHigh builds the thermal/acoustic risk variant
func PSULoadHigh(loadW, ratedW int) Warning {
	pct := 0.0
	if ratedW > 0 {
		pct = float64(loadW) / float64(ratedW) * 100
	}
	return Warning{Kind: WarningPSULoadHigh, Severity: SeverityWarning, LoadW: loadW, RatedW: ratedW, LoadPct: pct}
}

// PSUUndersized builds the variant for a PSU below the sizing minimum
func PSUUndersized(loadW, minimumW, ratedW int) Warning {
	return Warning{Kind: WarningPSUUndersized, Severity: SeverityCritical, LoadW: loadW, MinimumW: minimumW, RatedW: ratedW}
}

// FormFactorMismatch builds the variant for a case that does not take the board
func FormFactorMismatch(formFactor string, supports []string) Warning {
	return Warning{Kind: WarningFormFactor, Severity: SeverityCritical, FormFactor: formFactor, Supports: supports}
}

// GPUClearance builds the GPU length clearance variant
func GPUClearance(lengthMM, limitMM int) Warning {
	return Warning{Kind: WarningGPUClearance, Severity: SeverityCritical, SizeMM: lengthMM, LimitMM: limitMM}
}

// CoolerClearance builds the cooler height clearance variant
func CoolerClearance(heightMM, limitMM int) Warning {
	return Warning{Kind: WarningCoolerClearance, Severity: SeverityCritical, SizeMM: heightMM, LimitMM: limitMM}
}

// Message renders the warning as text
func (w Warning) Message() string {
	switch w.Kind {
	case WarningOverBudget:
		overage := decimal.Zero
		if w.Overage != nil {
			overage = *w.Overage
		}
		return fmt.Sprintf("Build exceeds budget by $%s", overage.StringFixed(2))
	case WarningPSULoadHigh:
		return fmt.Sprintf("Estimated %dW load is %.0f%% of the %dW PSU rating; expect more heat and fan noise",
			w.LoadW, w.LoadPct, w.RatedW)
	case WarningPSUUndersized:
		return fmt.Sprintf("PSU rated %dW is below the recommended %dW for an estimated %dW load",
			w.RatedW, w.MinimumW, w.LoadW)
	case WarningFormFactor:
		supports := "no boards"
		if len(w.Supports) > 0 {
			supports = strings.Join(w.Supports, ", ")
		}
		return fmt.Sprintf("Motherboard form factor %s is not supported by the case (supports %s)", w.FormFactor, supports)
	case WarningGPUClearance:
		return fmt.Sprintf("GPU length %dmm exceeds case limit of %dmm", w.SizeMM, w.LimitMM)
	case WarningCoolerClearance:
		return fmt.Sprintf("Cooler height %dmm exceeds case limit of %dmm", w.SizeMM, w.LimitMM)
	default:
		return string(w.Kind)
	}
}

// MarshalJSON adds the rendered message next to the payload
func (w Warning) MarshalJSON() ([]byte, error) {
	type plain Warning
	return json.Marshal(struct {
		plain
		Message string `json:"message"`
	}{plain(w), w.Message()})
}

// ReasonKind tags the variant of a Reason
type ReasonKind string

const (
	ReasonGPUResolution ReasonKind = "gpu_resolution"
	ReasonCPUBalance    ReasonKind = "cpu_balance"
	ReasonUSBCHeader    ReasonKind = "usbc_header"
	ReasonPSUSizing     ReasonKind = "psu_sizing"
	ReasonGPUFallback   ReasonKind = "gpu_fallback"
	ReasonCPUFallback   ReasonKind = "cpu_fallback"
	ReasonPSUFallback   ReasonKind = "psu_fallback"
)

// Reason is a rationale for one of the picks
type Reason struct {
	Kind       ReasonKind `json:"kind"`
	Part       string     `json:"part,omitempty"`
	Resolution Resolution `json:"resolution,omitempty"`
	Tier       int        `json:"tier,omitempty"`
	Preference Preference `json:"preference,omitempty"`
	LoadW      int        `json:"load_w,omitempty"`
	RatedW     int        `json:"rated_w,omitempty"`

	// Set on fallback variants
	Cap      *decimal.Decimal `json:"cap,omitempty"`
	MinimumW int              `json:"minimum_w,omitempty"`
}

// Message renders the reason as text
func (r Reason) Message() string {
	switch r.Kind {
	case ReasonGPUResolution:
		return fmt.Sprintf("%s gives the best %s performance per dollar within the GPU budget", r.Part, r.Resolution)
	case ReasonCPUBalance:
		return fmt.Sprintf("%s (tier %d) keeps the CPU matched to the GPU for steady FPS on the %s profile",
			r.Part, r.Tier, r.Preference)
	case ReasonUSBCHeader:
		return fmt.Sprintf("%s has a front-panel USB-C header", r.Part)
	case ReasonPSUSizing:
		return fmt.Sprintf("%dW power supply covers an estimated %dW load with sustained-load headroom", r.RatedW, r.LoadW)
	case ReasonGPUFallback:
		return fmt.Sprintf("%s is the cheapest GPU available, none within the $%s GPU budget", r.Part, capText(r.Cap))
	case ReasonCPUFallback:
		return fmt.Sprintf("%s is the cheapest CPU available, none within the $%s CPU budget at tier %d or below",
			r.Part, capText(r.Cap), r.Tier)
	case ReasonPSUFallback:
		return fmt.Sprintf("%dW power supply is the largest available, below the recommended %dW for an estimated %dW load",
			r.RatedW, r.MinimumW, r.LoadW)
	default:
		return string(r.Kind)
	}
}

func capText(c *decimal.Decimal) string {
	if c == nil {
		return decimal.Zero.StringFixed(2)
	}
	return c.StringFixed(2)
}

// MarshalJSON adds the rendered message next to the payload
func (r Reason) MarshalJSON() ([]byte, error) {
	type plain Reason
	return json.Marshal(struct {
		plain
		Message string `json:"message"`
	}{plain(r), r.Message()})
}
