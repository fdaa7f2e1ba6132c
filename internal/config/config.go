package config

type Config struct {
	InputPath    string
	OutputVideo  string
	Width        int
	Height       int
	FPS          int
	Workers      int
	PreHold      float64
	PostHold     float64
	IntroHold    float64
	OutroHold    float64
	AudioPath    string
	AudioSync    bool
	VideoEncoder string
	Quality      int
	QRLink       string
	ShowStats    bool
	BuildVersion string
	ProfilePath  string
}

// Default возвращает конфигурацию с таймингами по умолчанию: пауза перед
// операцией, пауза после, вступительный и финальный кадры.
func Default() Config {
	return Config{
		Width:     1280,
		Height:    720,
		FPS:       30,
		PreHold:   1.5,
		PostHold:  2.0,
		IntroHold: 1.0,
		OutroHold: 3.0,
	}
}
