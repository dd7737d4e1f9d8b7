// ABOUTME: Tests for GPU, CPU, motherboard, memory, and storage selectors
// ABOUTME: Covers caps, tier ceilings, hard constraints, and fallback outcomes

package services

import (
	"errors"
	"testing"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
)

func mustProfile(t *testing.T, p models.Preference) Profile {
	t.Helper()
	profile, err := ResolveProfile(p)
	if err != nil {
		t.Fatalf("ResolveProfile(%q) error: %v", p, err)
	}
	return profile
}

func TestResolveProfile(t *testing.T) {
	tests := []struct {
		preference models.Preference
		share      string
		ceiling    int
	}{
		{models.PreferenceValue, "0.40", 3},
		{models.PreferenceBalanced, "0.48", 4},
		{models.PreferenceMax, "0.55", 5},
	}
	for _, tt := range tests {
		t.Run(string(tt.preference), func(t *testing.T) {
			p := mustProfile(t, tt.preference)
			if !p.GPUBudgetShare.Equal(usd(tt.share)) {
				t.Errorf("GPUBudgetShare = %s, want %s", p.GPUBudgetShare, tt.share)
			}
			if p.CPUTierCeiling != tt.ceiling {
				t.Errorf("CPUTierCeiling = %d, want %d", p.CPUTierCeiling, tt.ceiling)
			}
		})
	}

	if _, err := ResolveProfile("turbo"); !errors.Is(err, models.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest for unknown preference, got %v", err)
	}
}

func TestSelectGPU(t *testing.T) {
	catalog := sampleCatalog()
	tests := []struct {
		name       string
		req        models.BuildRequest
		wantID     string
		wantResult models.Outcome
	}{
		{"balanced 1440 picks best ratio under cap", gamingRequest("1000", models.Resolution1440, models.PreferenceBalanced), "gpu-rx7700xt", models.OutcomeIdeal},
		{"value 1440 cap excludes 7700 XT", gamingRequest("1000", models.Resolution1440, models.PreferenceValue), "gpu-rx6600", models.OutcomeIdeal},
		{"1080 ranks by 1080 score", gamingRequest("1000", models.Resolution1080, models.PreferenceBalanced), "gpu-rx6600", models.OutcomeIdeal},
		{"tiny budget falls back to cheapest", gamingRequest("300", models.Resolution1440, models.PreferenceMax), "gpu-rx6600", models.OutcomeRelaxed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gpu, sel, err := SelectGPU(catalog.GPUs, tt.req, mustProfile(t, tt.req.Preference))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gpu.ID != tt.wantID {
				t.Errorf("GPU = %s, want %s", gpu.ID, tt.wantID)
			}
			if sel.Outcome != tt.wantResult {
				t.Errorf("Outcome = %s, want %s", sel.Outcome, tt.wantResult)
			}
			if sel.Category != models.CategoryGPU {
				t.Errorf("Category = %s, want gpu", sel.Category)
			}
		})
	}
}

func TestSelectGPU_TiesKeepCatalogOrder(t *testing.T) {
	gpus := []models.GPU{
		{ID: "first", Perf1080: 100, Price: usd("200")},
		{ID: "second", Perf1080: 50, Price: usd("100")},
	}
	req := gamingRequest("1000", models.Resolution1080, models.PreferenceBalanced)
	gpu, _, err := SelectGPU(gpus, req, mustProfile(t, req.Preference))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gpu.ID != "first" {
		t.Errorf("equal ratios should keep catalog order, got %s", gpu.ID)
	}
}

func TestSelectGPU_Empty(t *testing.T) {
	req := gamingRequest("1000", models.Resolution1080, models.PreferenceBalanced)
	_, _, err := SelectGPU(nil, req, mustProfile(t, req.Preference))
	var exhausted *models.CategoryExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected CategoryExhaustedError, got %v", err)
	}
	if exhausted.Category != models.CategoryGPU {
		t.Errorf("Category = %s, want gpu", exhausted.Category)
	}
	if !errors.Is(err, models.ErrExhausted) {
		t.Error("expected error to wrap ErrExhausted")
	}
}

func TestCPUTierCeiling(t *testing.T) {
	tests := []struct {
		preference models.Preference
		useCase    models.UseCase
		want       int
	}{
		{models.PreferenceValue, models.UseCaseGaming, 3},
		{models.PreferenceBalanced, models.UseCaseGaming, 4},
		{models.PreferenceMax, models.UseCaseGaming, 5},
		{models.PreferenceMax, models.UseCaseMinecraft, 4},
		{models.PreferenceValue, models.UseCaseMinecraft, 3},
	}
	for _, tt := range tests {
		if got := CPUTierCeiling(mustProfile(t, tt.preference), tt.useCase); got != tt.want {
			t.Errorf("CPUTierCeiling(%s, %s) = %d, want %d", tt.preference, tt.useCase, got, tt.want)
		}
	}
}

func TestCPUBudgetCap(t *testing.T) {
	req := gamingRequest("1000", models.Resolution1080, models.PreferenceBalanced)
	if got := CPUBudgetCap(req); !got.Equal(usd("250")) {
		t.Errorf("gaming cap = %s, want 250", got)
	}
	req.UseCase = models.UseCaseGeneral
	if got := CPUBudgetCap(req); !got.Equal(usd("180")) {
		t.Errorf("general cap = %s, want 180", got)
	}
}

func TestSelectCPU(t *testing.T) {
	catalog := sampleCatalog()
	tests := []struct {
		name    string
		req     models.BuildRequest
		wantID  string
		outcome models.Outcome
	}{
		{"balanced gaming", gamingRequest("1000", models.Resolution1440, models.PreferenceBalanced), "cpu-r5-5600", models.OutcomeIdeal},
		{"low budget takes entry chip", gamingRequest("400", models.Resolution1440, models.PreferenceBalanced), "cpu-i3-12100f", models.OutcomeIdeal},
		{"nothing under cap", gamingRequest("200", models.Resolution1440, models.PreferenceBalanced), "cpu-i3-12100f", models.OutcomeRelaxed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu, sel, err := SelectCPU(catalog.CPUs, tt.req, mustProfile(t, tt.req.Preference))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cpu.ID != tt.wantID {
				t.Errorf("CPU = %s, want %s", cpu.ID, tt.wantID)
			}
			if sel.Outcome != tt.outcome {
				t.Errorf("Outcome = %s, want %s", sel.Outcome, tt.outcome)
			}
		})
	}
}

func TestSelectCPU_RespectsTierCeiling(t *testing.T) {
	cpus := []models.CPU{
		{ID: "tier5", Tier: 5, GamingScore: 1000, Price: usd("100")},
		{ID: "tier3", Tier: 3, GamingScore: 100, Price: usd("100")},
	}
	req := gamingRequest("2000", models.Resolution1080, models.PreferenceValue)
	cpu, _, err := SelectCPU(cpus, req, mustProfile(t, req.Preference))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cpu.ID != "tier3" {
		t.Errorf("value profile should skip tier 5, got %s", cpu.ID)
	}
}

func TestSelectCPU_ZeroPriceDoesNotPanic(t *testing.T) {
	cpus := []models.CPU{
		{ID: "free", Tier: 1, GamingScore: 10, Price: usd("0")},
		{ID: "paid", Tier: 1, GamingScore: 50, Price: usd("100")},
	}
	req := gamingRequest("1000", models.Resolution1080, models.PreferenceMax)
	cpu, _, err := SelectCPU(cpus, req, mustProfile(t, req.Preference))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cpu.ID != "free" {
		t.Errorf("free item scores 10 per unit, expected it to win, got %s", cpu.ID)
	}
}

func TestRequiredMemoryType(t *testing.T) {
	if got := RequiredMemoryType(models.CPU{Socket: "AM5"}, DefaultDDR5Sockets); got != models.MemoryDDR5 {
		t.Errorf("AM5 = %s, want DDR5", got)
	}
	if got := RequiredMemoryType(models.CPU{Socket: "AM4"}, DefaultDDR5Sockets); got != models.MemoryDDR4 {
		t.Errorf("AM4 = %s, want DDR4", got)
	}
	if got := RequiredMemoryType(models.CPU{Socket: "LGA1851"}, []string{"AM5", "LGA1851"}); got != models.MemoryDDR5 {
		t.Errorf("configured LGA1851 = %s, want DDR5", got)
	}
}

func TestMotherboardScore(t *testing.T) {
	tests := []struct {
		name  string
		board models.Motherboard
		want  int
	}{
		{"bare mATX", models.Motherboard{FormFactor: "mATX"}, 0},
		{"two slots", models.Motherboard{FormFactor: "mATX", M2Slots: 2}, 4},
		{"usb-c header", models.Motherboard{FormFactor: "mATX", USBCHeader: true}, 3},
		{"full ATX", models.Motherboard{FormFactor: "ATX", M2Slots: 3, USBCHeader: true}, 10},
	}
	for _, tt := range tests {
		if got := MotherboardScore(tt.board); got != tt.want {
			t.Errorf("%s: MotherboardScore = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestSelectMotherboard(t *testing.T) {
	catalog := sampleCatalog()
	am4 := catalog.CPUs[0]

	board, sel, err := SelectMotherboard(catalog.Motherboards, am4, models.MemoryDDR4, usd("1000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.ID != "mb-b550-atx" || sel.Outcome != models.OutcomeIdeal {
		t.Errorf("got %s/%s, want mb-b550-atx/ideal", board.ID, sel.Outcome)
	}

	board, sel, err = SelectMotherboard(catalog.Motherboards, am4, models.MemoryDDR4, usd("400"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.ID != "mb-b550m" || sel.Outcome != models.OutcomeRelaxed {
		t.Errorf("got %s/%s, want cheapest compatible mb-b550m/relaxed", board.ID, sel.Outcome)
	}
}

func TestSelectMotherboard_NeverRelaxesCompatibility(t *testing.T) {
	catalog := sampleCatalog()
	am5 := catalog.CPUs[1]
	boards := []models.Motherboard{
		{ID: "am4-board", Socket: "AM4", MemoryType: "DDR4", Price: usd("50")},
		{ID: "am5-ddr4", Socket: "AM5", MemoryType: "DDR4", Price: usd("60")},
	}

	_, _, err := SelectMotherboard(boards, am5, models.MemoryDDR5, usd("5000"))
	var exhausted *models.CategoryExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected CategoryExhaustedError, got %v", err)
	}
	if exhausted.Category != models.CategoryMotherboard {
		t.Errorf("Category = %s, want motherboard", exhausted.Category)
	}
	if exhausted.Constraint != "socket AM5 with DDR5 memory" {
		t.Errorf("Constraint = %q", exhausted.Constraint)
	}
}

func TestSelectMemory(t *testing.T) {
	catalog := sampleCatalog()
	tests := []struct {
		name       string
		kits       []models.Memory
		memoryType string
		useCase    models.UseCase
		wantID     string
		outcome    models.Outcome
	}{
		{"gaming needs 32GB", catalog.Memory, "DDR4", models.UseCaseGaming, "ram-ddr4-32", models.OutcomeIdeal},
		{"general needs 16GB", catalog.Memory, "DDR4", models.UseCaseGeneral, "ram-ddr4-16", models.OutcomeIdeal},
		{"roblox needs 16GB", catalog.Memory, "DDR5", models.UseCaseRoblox, "ram-ddr5-16", models.OutcomeIdeal},
		{"no large kit relaxes capacity", catalog.Memory[:1], "DDR4", models.UseCaseGaming, "ram-ddr4-16", models.OutcomeRelaxed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kit, sel, err := SelectMemory(tt.kits, tt.memoryType, tt.useCase)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if kit.ID != tt.wantID || sel.Outcome != tt.outcome {
				t.Errorf("got %s/%s, want %s/%s", kit.ID, sel.Outcome, tt.wantID, tt.outcome)
			}
			if kit.Type != tt.memoryType {
				t.Errorf("kit type %s does not match required %s", kit.Type, tt.memoryType)
			}
		})
	}
}

func TestSelectMemory_NoMatchingType(t *testing.T) {
	kits := []models.Memory{{ID: "ddr4", Type: "DDR4", CapacityGB: 32, Price: usd("70")}}
	_, _, err := SelectMemory(kits, models.MemoryDDR5, models.UseCaseGaming)
	if !errors.Is(err, models.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if err.Error() != "no ram satisfies constraint: memory type DDR5" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestSelectStorage(t *testing.T) {
	catalog := sampleCatalog()
	tests := []struct {
		name    string
		drives  []models.Storage
		budget  string
		wantID  string
		outcome models.Outcome
	}{
		{"below threshold is cheapest", catalog.Storage, "1199.99", "ssd-500", models.OutcomeIdeal},
		{"at threshold prefers large", catalog.Storage, "1200", "ssd-2tb", models.OutcomeIdeal},
		{"no large drive relaxes", catalog.Storage[:2], "1500", "ssd-500", models.OutcomeRelaxed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drive, sel, err := SelectStorage(tt.drives, usd(tt.budget))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if drive.ID != tt.wantID || sel.Outcome != tt.outcome {
				t.Errorf("got %s/%s, want %s/%s", drive.ID, sel.Outcome, tt.wantID, tt.outcome)
			}
		})
	}

	if _, _, err := SelectStorage(nil, usd("500")); !errors.Is(err, models.ErrExhausted) {
		t.Errorf("expected ErrExhausted for empty storage, got %v", err)
	}
}
