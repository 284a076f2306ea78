package chem

import (
	"errors"
	"fmt"
	"io/ioutil"
	"strings"

	"gopkg.in/yaml.v2"
)

var (
	ErrInvalidCount       = errors.New("particle count must not be negative")
	ErrInvalidTemperature = fmt.Errorf("temperature must be between %d and %d", MinTemperature, MaxTemperature)
	ErrUnknownStartMode   = errors.New("unknown start mode")
)

const (
	MinTemperature = 1
	MaxTemperature = 5
)

//Profile describes one simulation setup. Profiles are usually read from yaml
//on top of DefaultProfile, so any key left out keeps its default.
type Profile struct {
	Label       string    `yaml:"Label"`
	Arena       Arena     `yaml:"Arena"`
	StartMode   StartMode `yaml:"StartMode"`
	Stoich      int       `yaml:"Stoich"` //particles per reactant in a 1:1 start
	Excess      int       `yaml:"Excess"` //extra particles of the reactant in excess
	Acid        *int      `yaml:"Acid"`   //explicit counts override the start mode
	Alcohol     *int      `yaml:"Alcohol"`
	Temperature int       `yaml:"Temperature"`
	Diagnostic  bool      `yaml:"Diagnostic"`
	Seed        int64     `yaml:"Seed"` //0 seeds from the clock
	Regions     Regions   `yaml:"Regions"`
	Base        Params    `yaml:"BaseParams"`
	Diag        Params    `yaml:"DiagnosticParams"`
	LogConfig   LogConfig `yaml:"Log"`
}

type LogConfig struct {
	LogLevel      string `yaml:"Level"`
	LogFile       string `yaml:"File"`
	LogShowCaller bool   `yaml:"ShowCaller"`
}

//Arena is the simulation rectangle in pixels; the origin is the top left corner.
type Arena struct {
	Width  float64 `yaml:"Width"`
	Height float64 `yaml:"Height"`
}

//Rect is an axis aligned rectangle expressed as fractions of the arena.
type Rect struct {
	X0 float64 `yaml:"X0"`
	X1 float64 `yaml:"X1"`
	Y0 float64 `yaml:"Y0"`
	Y1 float64 `yaml:"Y1"`
}

//Regions are the spawn rectangles of the two seeded reactants. They may overlap.
type Regions struct {
	Acid    Rect `yaml:"Acid"`
	Alcohol Rect `yaml:"Alcohol"`
}

//Params is one tuning profile of the step engine.
type Params struct {
	DT                  float64 `yaml:"DT"`
	SpeedMul            float64 `yaml:"SpeedMul"`
	ReactionProbability float64 `yaml:"ReactionProbability"`
	Kick                float64 `yaml:"Kick"`
}

//BaseParams is the slow classroom profile.
var BaseParams = Params{
	DT:                  1.0 / 60,
	SpeedMul:            1.0,
	ReactionProbability: 0.010,
	Kick:                0.35,
}

//DiagnosticParams speeds everything up; DT is always taken from the base profile.
var DiagnosticParams = Params{
	DT:                  1.0 / 60,
	SpeedMul:            2.5,
	ReactionProbability: 0.16,
	Kick:                0.85,
}

//StartMode selects the initial reactant ratio.
type StartMode string

const (
	StartStoich  StartMode = "stoich"
	StartAlcohol StartMode = "alcohol" //alcohol in excess
	StartAcid    StartMode = "acid"    //acid in excess
)

//ParseStartMode accepts the mode names plus the short aliases used by the
//classroom keyboard shortcuts.
func ParseStartMode(s string) (StartMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stoich", "1:1":
		return StartStoich, nil
	case "alcohol", "meoh":
		return StartAlcohol, nil
	case "acid", "sa":
		return StartAcid, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStartMode, s)
}

//UnmarshalYAML lets profiles use any accepted alias.
func (m *StartMode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := ParseStartMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

//StartCounts returns the initial acid and alcohol counts for a start mode.
func StartCounts(m StartMode, stoich, excess int) (acid, alcohol int) {
	acid, alcohol = stoich, stoich
	switch m {
	case StartAlcohol:
		alcohol += excess
	case StartAcid:
		acid += excess
	}
	return
}

//DefaultProfile reproduces the classroom demo: 14 + 14 at temperature 1.
func DefaultProfile() Profile {
	return Profile{
		Label:       "default",
		Arena:       Arena{Width: 900, Height: 560},
		StartMode:   StartStoich,
		Stoich:      14,
		Excess:      8,
		Temperature: 1,
		Regions: Regions{
			Acid:    Rect{X0: 0.25, X1: 0.75, Y0: 0.55, Y1: 0.85},
			Alcohol: Rect{X0: 0.15, X1: 0.85, Y0: 0.18, Y1: 0.70},
		},
		Base: BaseParams,
		Diag: DiagnosticParams,
		LogConfig: LogConfig{
			LogLevel: "warn",
		},
	}
}

//Counts returns the initial reactant counts the profile asks for.
func (p Profile) Counts() (acid, alcohol int) {
	acid, alcohol = StartCounts(p.StartMode, p.Stoich, p.Excess)
	if p.Acid != nil {
		acid = *p.Acid
	}
	if p.Alcohol != nil {
		alcohol = *p.Alcohol
	}
	return
}

//Validate checks the profile for values the engine cannot run with.
func (p Profile) Validate() error {
	if p.Arena.Width <= 0 || p.Arena.Height <= 0 {
		return fmt.Errorf("invalid arena %vx%v", p.Arena.Width, p.Arena.Height)
	}
	if p.Temperature < MinTemperature || p.Temperature > MaxTemperature {
		return fmt.Errorf("%w, got %v", ErrInvalidTemperature, p.Temperature)
	}
	if p.Stoich < 0 || p.Excess < 0 {
		return fmt.Errorf("%w: stoich %v excess %v", ErrInvalidCount, p.Stoich, p.Excess)
	}
	if a, b := p.Counts(); a < 0 || b < 0 {
		return fmt.Errorf("%w: acid %v alcohol %v", ErrInvalidCount, a, b)
	}
	if err := p.Regions.validate(); err != nil {
		return err
	}
	if err := p.Base.validate(); err != nil {
		return fmt.Errorf("base params: %w", err)
	}
	if err := p.Diag.validate(); err != nil {
		return fmt.Errorf("diagnostic params: %w", err)
	}
	return nil
}

func (r Regions) validate() error {
	if err := r.Acid.validate(); err != nil {
		return fmt.Errorf("acid region: %w", err)
	}
	if err := r.Alcohol.validate(); err != nil {
		return fmt.Errorf("alcohol region: %w", err)
	}
	return nil
}

func (r Rect) validate() error {
	for _, v := range []float64{r.X0, r.X1, r.Y0, r.Y1} {
		if v < 0 || v > 1 {
			return fmt.Errorf("bound %v outside [0,1]", v)
		}
	}
	if r.X0 > r.X1 || r.Y0 > r.Y1 {
		return fmt.Errorf("empty rectangle %+v", r)
	}
	return nil
}

func (p Params) validate() error {
	//DT of the diagnostic profile is never used
	if p.DT < 0 {
		return fmt.Errorf("negative dt %v", p.DT)
	}
	if p.SpeedMul <= 0 {
		return fmt.Errorf("speed multiplier must be positive, got %v", p.SpeedMul)
	}
	if p.ReactionProbability < 0 || p.ReactionProbability > 1 {
		return fmt.Errorf("reaction probability %v outside [0,1]", p.ReactionProbability)
	}
	if p.Kick < 0 {
		return fmt.Errorf("negative kick %v", p.Kick)
	}
	return nil
}

//ParseProfile reads a yaml profile over the defaults and validates it.
func ParseProfile(src []byte) (Profile, error) {
	p := DefaultProfile()
	if err := yaml.Unmarshal(src, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

//LoadProfile reads and parses the profile at path.
func LoadProfile(path string) (Profile, error) {
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}
	p, err := ParseProfile(src)
	if err != nil {
		return Profile{}, fmt.Errorf("profile %v: %w", path, err)
	}
	return p, nil
}
