// ABOUTME: Build request input types and enum parsing
// ABOUTME: Validates budget, use case, resolution, and preference values

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidRequest is wrapped by every request validation failure
var ErrInvalidRequest = errors.New("invalid build request")

// UseCase is the intended workload of the machine
type UseCase string

const (
	UseCaseGeneral   UseCase = "general"
	UseCaseGaming    UseCase = "gaming"
	UseCaseMinecraft UseCase = "minecraft"
	UseCaseRoblox    UseCase = "roblox"
)

// UseCases lists accepted use cases
var UseCases = []UseCase{UseCaseGeneral, UseCaseGaming, UseCaseMinecraft, UseCaseRoblox}

// ParseUseCase converts a string to a UseCase
func ParseUseCase(s string) (UseCase, error) {
	u := UseCase(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range UseCases {
		if u == known {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: unknown use case %q", ErrInvalidRequest, s)
}

// Resolution is the target display height in pixels
type Resolution int

const (
	Resolution1080 Resolution = 1080
	Resolution1440 Resolution = 1440
)

// ParseResolution accepts "1080", "1080p", "1440" or "1440p"
func ParseResolution(s string) (Resolution, error) {
	v, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "p"))
	if err != nil {
		return 0, fmt.Errorf("%w: unknown resolution %q", ErrInvalidRequest, s)
	}
	r := Resolution(v)
	if !r.Valid() {
		return 0, fmt.Errorf("%w: unknown resolution %q", ErrInvalidRequest, s)
	}
	return r, nil
}

// Valid reports whether r is a supported resolution
func (r Resolution) Valid() bool {
	return r == Resolution1080 || r == Resolution1440
}

func (r Resolution) String() string {
	return strconv.Itoa(int(r)) + "p"
}

// Preference is the tuning profile of one build variant
type Preference string

const (
	PreferenceValue    Preference = "value"
	PreferenceBalanced Preference = "balanced"
	PreferenceMax      Preference = "max"
)

// Preferences lists the profiles in result order
var Preferences = []Preference{PreferenceValue, PreferenceBalanced, PreferenceMax}

// ParsePreference converts a string to a Preference
func ParsePreference(s string) (Preference, error) {
	p := Preference(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Preferences {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown preference %q", ErrInvalidRequest, s)
}

// BuildSetRequest asks for all three preference variants
type BuildSetRequest struct {
	Budget     decimal.Decimal `json:"budget"`
	UseCase    UseCase         `json:"use_case"`
	Resolution Resolution      `json:"resolution"`
}

// Validate checks budget and enum values
func (r BuildSetRequest) Validate() error {
	if r.Budget.IsNegative() {
		return fmt.Errorf("%w: budget must not be negative, got %s", ErrInvalidRequest, r.Budget)
	}
	if _, err := ParseUseCase(string(r.UseCase)); err != nil {
		return err
	}
	if !r.Resolution.Valid() {
		return fmt.Errorf("%w: unknown resolution %d", ErrInvalidRequest, int(r.Resolution))
	}
	return nil
}

// WithPreference returns the single-variant request for p
func (r BuildSetRequest) WithPreference(p Preference) BuildRequest {
	return BuildRequest{
		Budget:     r.Budget,
		UseCase:    r.UseCase,
		Resolution: r.Resolution,
		Preference: p,
	}
}

// Key returns a canonical string for memoization
func (r BuildSetRequest) Key() string {
	return fmt.Sprintf("%s|%s|%d", r.Budget.String(), r.UseCase, int(r.Resolution))
}

// BuildRequest asks for one build variant
type BuildRequest struct {
	Budget     decimal.Decimal `json:"budget"`
	UseCase    UseCase         `json:"use_case"`
	Resolution Resolution      `json:"resolution"`
	Preference Preference      `json:"preference"`
}

// Validate checks budget and enum values
func (r BuildRequest) Validate() error {
	if err := r.SetRequest().Validate(); err != nil {
		return err
	}
	if _, err := ParsePreference(string(r.Preference)); err != nil {
		return err
	}
	return nil
}

// SetRequest drops the preference
func (r BuildRequest) SetRequest() BuildSetRequest {
	return BuildSetRequest{Budget: r.Budget, UseCase: r.UseCase, Resolution: r.Resolution}
}

// UnmarshalJSON accepts resolution as a number or as "1440p"
func (r *Resolution) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*r = Resolution(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: resolution must be a number or string", ErrInvalidRequest)
	}
	parsed, err := ParseResolution(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// UnmarshalJSON normalizes case and surrounding space; Validate rejects unknown values
func (u *UseCase) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: use case must be a string", ErrInvalidRequest)
	}
	*u = UseCase(strings.ToLower(strings.TrimSpace(s)))
	return nil
}

// UnmarshalJSON normalizes case and surrounding space; Validate rejects unknown values
func (p *Preference) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: preference must be a string", ErrInvalidRequest)
	}
	*p = Preference(strings.ToLower(strings.TrimSpace(s)))
	return nil
}
