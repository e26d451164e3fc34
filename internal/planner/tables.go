package planner

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights are the per-occasion multipliers applied by the scorer.
type Weights struct {
	Speed   float64 `yaml:"speed" json:"speed"`
	Comfort float64 `yaml:"comfort" json:"comfort"`
	Cost    float64 `yaml:"cost" json:"cost"`
}

// BookingLink points at a partner platform that sells tickets for a mode.
type BookingLink struct {
	Name    string `yaml:"name" json:"name"`
	BaseURL string `yaml:"base_url" json:"baseUrl"`
	Code    string `yaml:"code" json:"code"`
}

type Coupon struct {
	Code        string  `yaml:"code" json:"code"`
	Value       float64 `yaml:"value" json:"value"`
	Description string  `yaml:"description" json:"description"`
}

// Tables is the static lookup data the planner reads. It is built once at
// process start and must not be modified after it is handed to New.
type Tables struct {
	EmissionFactors       map[string]float64       `yaml:"emission_factors"`
	DefaultEmissionFactor float64                  `yaml:"default_emission_factor"`
	Occasions             map[string]Weights       `yaml:"occasions"`
	SpeedRanks            map[string]int           `yaml:"speed_ranks"`
	ModeNames             map[string]string        `yaml:"mode_names"`
	Platforms             map[string][]BookingLink `yaml:"platforms"`
	Coupons               map[string]Coupon        `yaml:"coupons"`
}

const (
	OccasionDefault   = "default"
	CouponFirstTrip   = "first_trip"
	PlatformsFallback = "bus"
)

// DefaultTables returns the built-in catalog of factors, weights, names,
// partner platforms and coupons.
func DefaultTables() *Tables {
	return &Tables{
		// kg CO2e per hour of travel
		EmissionFactors: map[string]float64{
			"1st_ac_train":     2.5,
			"2nd_ac_train":     2.5,
			"3rd_ac_train":     2.5,
			"sleeper_train":    2.5,
			"ac_bus":           3.8,
			"non_ac_bus":       3.8,
			"semi_sleeper_bus": 3.8,
			"sleeper_bus":      3.8,
			"economy_flight":   9.5,
			"business_flight":  12.0,
			"shared_taxi":      4.6,
			"private_ac_taxi":  5.5,
			"private_taxi":     5.0,
			"metro":            1.8,
			"auto_rickshaw":    3.2,
		},
		DefaultEmissionFactor: 3.5,
		Occasions: map[string]Weights{
			"emergency":     {Speed: 1.4, Comfort: 0.8, Cost: 0.6},
			"medical":       {Speed: 1.3, Comfort: 0.9, Cost: 0.7},
			"business":      {Speed: 1.1, Comfort: 1.2, Cost: 0.9},
			"exam":          {Speed: 1.2, Comfort: 1.0, Cost: 0.85},
			"wedding":       {Speed: 1.0, Comfort: 1.1, Cost: 0.9},
			"leisure":       {Speed: 0.9, Comfort: 1.2, Cost: 1.1},
			OccasionDefault: {Speed: 1, Comfort: 1, Cost: 1},
		},
		// lower is faster
		SpeedRanks: map[string]int{
			"business_flight": 1,
			"economy_flight":  2,
			"metro":           3,
			"1st_ac_train":    4,
			"2nd_ac_train":    5,
			"3rd_ac_train":    6,
			"sleeper_train":   7,
			"private_ac_taxi": 8,
			"ac_bus":          9,
			"shared_taxi":     10,
			"non_ac_bus":      11,
			"auto_rickshaw":   12,
		},
		ModeNames: map[string]string{
			"1st_ac_train":     "1st AC Train",
			"2nd_ac_train":     "2nd AC Train",
			"3rd_ac_train":     "3rd AC Train",
			"sleeper_train":    "Sleeper Train",
			"ac_bus":           "AC Bus",
			"non_ac_bus":       "Non-AC Bus",
			"semi_sleeper_bus": "Semi-Sleeper Bus",
			"sleeper_bus":      "Sleeper Bus",
			"economy_flight":   "Economy Flight",
			"business_flight":  "Business Flight",
			"shared_taxi":      "Shared Taxi",
			"private_ac_taxi":  "Private AC Taxi",
			"private_taxi":     "Private Taxi",
			"metro":            "Metro",
			"auto_rickshaw":    "Auto-Rickshaw",
		},
		Platforms: map[string][]BookingLink{
			"bus": {
				{Name: "RedBus", BaseURL: "https://www.redbus.in", Code: "APT_RED"},
				{Name: "AbhiBus", BaseURL: "https://www.abhibus.com", Code: "APT_ABHI"},
				{Name: "MakeMyTrip Bus", BaseURL: "https://www.makemytrip.com/bus-tickets", Code: "APTMMT"},
			},
			"train": {
				{Name: "IRCTC", BaseURL: "https://www.irctc.co.in", Code: "Source=APT"},
				{Name: "ConfirmTkt", BaseURL: "https://www.confirmtkt.com", Code: "ref=APT"},
				{Name: "RailYatri", BaseURL: "https://www.railyatri.in", Code: "source=APT"},
			},
			"flight": {
				{Name: "MakeMyTrip", BaseURL: "https://www.makemytrip.com/flights", Code: "campaign=APT"},
				{Name: "Goibibo", BaseURL: "https://www.goibibo.com/flights", Code: "aff=APT"},
				{Name: "Cleartrip", BaseURL: "https://www.cleartrip.com/flights", Code: "source=APT"},
			},
			"taxi": {
				{Name: "Ola Cabs", BaseURL: "https://www.olacabs.com", Code: "referrer=APT"},
				{Name: "Uber", BaseURL: "https://www.uber.com", Code: "source=APT"},
				{Name: "Rapido", BaseURL: "https://www.rapido.bike", Code: "ref=APT"},
			},
			"metro": {
				{Name: "Metro Card", BaseURL: "#", Code: "app=APT"},
			},
			"auto": {
				{Name: "Auto Booking", BaseURL: "#", Code: "source=APT"},
			},
		},
		Coupons: map[string]Coupon{
			CouponFirstTrip:          {Code: "APTFIRST", Value: 500, Description: "First Trip Discount"},
			string(CategoryStandard): {Code: "APTSAVE200", Value: 200, Description: "Save ₹200"},
			string(CategoryLuxury):   {Code: "APTLUX500", Value: 500, Description: "Luxury Travel Discount"},
			string(CategorySpeed):    {Code: "APTFAST300", Value: 300, Description: "Express Travel Discount"},
		},
	}
}

// LoadTables overlays the YAML file at path on top of DefaultTables. Keys
// present in the file replace the built-in entries; everything else is kept.
func LoadTables(path string) (*Tables, error) {
	t := DefaultTables()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read planner tables: %w", err)
	}
	if err := yaml.Unmarshal(raw, t); err != nil {
		return nil, fmt.Errorf("parse planner tables %s: %w", path, err)
	}
	if _, ok := t.Occasions[OccasionDefault]; !ok {
		return nil, fmt.Errorf("planner tables %s: occasion %q is required", path, OccasionDefault)
	}
	if _, ok := t.Coupons[string(CategoryStandard)]; !ok {
		return nil, fmt.Errorf("planner tables %s: coupon %q is required", path, CategoryStandard)
	}
	if _, ok := t.Platforms[PlatformsFallback]; !ok {
		return nil, fmt.Errorf("planner tables %s: platforms for %q are required", path, PlatformsFallback)
	}
	return t, nil
}
