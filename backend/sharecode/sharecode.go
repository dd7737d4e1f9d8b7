// ABOUTME: Compact URL-safe share tokens for build sets
// ABOUTME: msgpack payload with a version tag, base64url encoded without padding

package sharecode

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v5"
)

// PayloadVersion is the token format written by Encode
const PayloadVersion = 1

// ErrInvalidToken is returned for tokens that cannot be decoded
var ErrInvalidToken = errors.New("invalid share token")

// Build is the shareable summary of one build
type Build struct {
	Preference       models.Preference    `json:"preference"`
	Budget           decimal.Decimal      `json:"budget"`
	UseCase          models.UseCase       `json:"use_case"`
	Resolution       models.Resolution    `json:"resolution"`
	TotalPrice       decimal.Decimal      `json:"total_price"`
	EstimatedWattage int                  `json:"estimated_wattage"`
	Parts            []models.PartSummary `json:"parts"`
}

// FromBuild keeps the fields a share token carries
func FromBuild(b models.Build) Build {
	return Build{
		Preference:       b.Preference,
		Budget:           b.Budget,
		UseCase:          b.UseCase,
		Resolution:       b.Resolution,
		TotalPrice:       b.TotalPrice,
		EstimatedWattage: b.EstimatedWattage,
		Parts:            b.Parts.Summaries(),
	}
}

// wire types use short keys and decimal strings to stay compact and exact
type wirePart struct {
	Category string `msgpack:"c"`
	ID       string `msgpack:"i"`
	Name     string `msgpack:"n"`
	Price    string `msgpack:"p"`
}

type wireBuild struct {
	Preference string     `msgpack:"f"`
	Budget     string     `msgpack:"b"`
	UseCase    string     `msgpack:"u"`
	Resolution int        `msgpack:"r"`
	Total      string     `msgpack:"t"`
	Wattage    int        `msgpack:"w"`
	Parts      []wirePart `msgpack:"p"`
}

type wirePayload struct {
	Version int         `msgpack:"v"`
	Builds  []wireBuild `msgpack:"s"`
}

// Encode turns builds into a share token
func Encode(builds []models.Build) (string, error) {
	shared := make([]Build, len(builds))
	for i, b := range builds {
		shared[i] = FromBuild(b)
	}
	return EncodeShared(shared)
}

// EncodeShared turns build summaries into a share token
func EncodeShared(builds []Build) (string, error) {
	payload := wirePayload{Version: PayloadVersion, Builds: make([]wireBuild, len(builds))}
	for i, b := range builds {
		wb := wireBuild{
			Preference: string(b.Preference),
			Budget:     b.Budget.String(),
			UseCase:    string(b.UseCase),
			Resolution: int(b.Resolution),
			Total:      b.TotalPrice.String(),
			Wattage:    b.EstimatedWattage,
			Parts:      make([]wirePart, len(b.Parts)),
		}
		for j, p := range b.Parts {
			wb.Parts[j] = wirePart{Category: string(p.Category), ID: p.ID, Name: p.Name, Price: p.Price.String()}
		}
		payload.Builds[i] = wb
	}

	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return "", fmt.Errorf("encoding share payload: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode recovers build summaries from a share token
func Decode(token string) ([]Build, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var payload wirePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if payload.Version != PayloadVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidToken, payload.Version)
	}

	builds := make([]Build, len(payload.Builds))
	for i, wb := range payload.Builds {
		b, err := wb.decode()
		if err != nil {
			return nil, fmt.Errorf("%w: build %d: %v", ErrInvalidToken, i, err)
		}
		builds[i] = b
	}
	return builds, nil
}

func (wb wireBuild) decode() (Build, error) {
	pref, err := models.ParsePreference(wb.Preference)
	if err != nil {
		return Build{}, err
	}
	useCase, err := models.ParseUseCase(wb.UseCase)
	if err != nil {
		return Build{}, err
	}
	res := models.Resolution(wb.Resolution)
	if !res.Valid() {
		return Build{}, fmt.Errorf("unknown resolution %d", wb.Resolution)
	}
	budget, err := decimal.NewFromString(wb.Budget)
	if err != nil {
		return Build{}, fmt.Errorf("budget: %w", err)
	}
	total, err := decimal.NewFromString(wb.Total)
	if err != nil {
		return Build{}, fmt.Errorf("total: %w", err)
	}

	parts := make([]models.PartSummary, len(wb.Parts))
	for i, p := range wb.Parts {
		category := models.Category(p.Category)
		if !category.Valid() {
			return Build{}, fmt.Errorf("unknown category %q", p.Category)
		}
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return Build{}, fmt.Errorf("%s price: %w", category, err)
		}
		parts[i] = models.PartSummary{Category: category, ID: p.ID, Name: p.Name, Price: price}
	}

	return Build{
		Preference:       pref,
		Budget:           budget,
		UseCase:          useCase,
		Resolution:       res,
		TotalPrice:       total,
		EstimatedWattage: wb.Wattage,
		Parts:            parts,
	}, nil
}
