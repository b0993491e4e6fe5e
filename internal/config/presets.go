package config

var Presets = map[string]map[string]*Config{
	"sine": {
		"classic": {
			Profile: "sine", Nx: 20, Nt: 10, Alpha: 0.01, Length: 1, Tmax: 0.5,
			Init: InitConfig{Amplitude: 1},
		},
		"fine": {
			Profile: "sine", Nx: 101, Nt: 2001, Alpha: 0.01, Length: 1, Tmax: 1,
			Init: InitConfig{Amplitude: 1},
		},
		"long": {
			Profile: "sine", Nx: 41, Nt: 401, Alpha: 0.01, Length: 2, Tmax: 2,
			Init: InitConfig{Amplitude: 1},
		},
	},
	"pulse": {
		"narrow": {
			Profile: "pulse", Nx: 81, Nt: 801, Alpha: 0.01, Length: 1, Tmax: 1,
			Init: InitConfig{Amplitude: 100, Center: 0.5, Width: 0.1},
		},
		"wide": {
			Profile: "pulse", Nx: 81, Nt: 801, Alpha: 0.01, Length: 1, Tmax: 1,
			Init: InitConfig{Amplitude: 50, Center: 0.5, Width: 0.4},
		},
		"offcenter": {
			Profile: "pulse", Nx: 81, Nt: 801, Alpha: 0.01, Length: 1, Tmax: 1,
			Init: InitConfig{Amplitude: 100, Center: 0.25, Width: 0.1},
		},
	},
	"flat": {
		"cooling": {
			Profile: "flat", Nx: 41, Nt: 401, Alpha: 0.01, Length: 1, Tmax: 1,
			Init: InitConfig{Amplitude: 100},
		},
		"quench": {
			Profile: "flat", Nx: 41, Nt: 2001, Alpha: 0.05, Length: 1, Tmax: 1,
			Init: InitConfig{Amplitude: 800, Left: 20, Right: 20},
		},
	},
	"ramp": {
		"steady": {
			Profile: "ramp", Nx: 41, Nt: 401, Alpha: 0.01, Length: 1, Tmax: 1,
			Init: InitConfig{Left: 0, Right: 100},
		},
	},
}

func GetPreset(profile, preset string) *Config {
	profilePresets, ok := Presets[profile]
	if !ok {
		return nil
	}
	cfg, ok := profilePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(profile string) []string {
	profilePresets, ok := Presets[profile]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(profilePresets))
	for name := range profilePresets {
		names = append(names, name)
	}
	return names
}
