package config

type YAMLConfig struct {
	Target   YAMLTarget   `yaml:"target"`
	Aperture YAMLAperture `yaml:"aperture"`
	MinPix   int          `yaml:"min_pix"`

	Maps []YAMLMap `yaml:"maps"`
	Mask *YAMLMask `yaml:"mask"`

	Bootstrap YAMLBootstrap `yaml:"bootstrap"`
	// "null" is a YAML keyword, so the section is named null_test.
	Null YAMLNull `yaml:"null_test"`

	Seed    uint64 `yaml:"seed"`
	Workers int    `yaml:"workers"`
	RunsDir string `yaml:"runs_dir"`
}

// YAMLTarget takes either galactic (gal_l/gal_b) or equatorial
// (ra_deg/dec_deg) coordinates; pointers distinguish absent from zero.
type YAMLTarget struct {
	Name string   `yaml:"name"`
	GalL *float64 `yaml:"gal_l"`
	GalB *float64 `yaml:"gal_b"`
	RA   *float64 `yaml:"ra_deg"`
	Dec  *float64 `yaml:"dec_deg"`
}

// YAMLAperture takes either a void angular radius theta_r_deg with
// optional scale fractions, or the three radii spelled out.
type YAMLAperture struct {
	ThetaRDeg    *float64 `yaml:"theta_r_deg"`
	CoreFrac     *float64 `yaml:"core_frac"`
	RimInnerFrac *float64 `yaml:"rim_inner_frac"`
	RimOuterFrac *float64 `yaml:"rim_outer_frac"`

	CoreDeg     *float64 `yaml:"core_deg"`
	RimInnerDeg *float64 `yaml:"rim_inner_deg"`
	RimOuterDeg *float64 `yaml:"rim_outer_deg"`
}

type YAMLMap struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
	Field int    `yaml:"field"`
	Unit  string `yaml:"unit"` // "K" (default) or "uK"
}

type YAMLMask struct {
	Path      string   `yaml:"path"`
	Field     int      `yaml:"field"`
	Threshold *float64 `yaml:"threshold"`
}

type YAMLBootstrap struct {
	Iterations int `yaml:"iterations"`
}

type YAMLNull struct {
	Trials      int     `yaml:"trials"`
	JitterDeg   float64 `yaml:"jitter_deg"`
	MinSepDeg   float64 `yaml:"min_sep_deg"`
	RetryBudget int     `yaml:"retry_budget"`
	MinTrials   int     `yaml:"min_trials"`
}
