package logic

// Decide maps one sensor frame to a lamp command.
//
// During the day the lamp is unconditionally off and the motion input is
// not consulted. At night the lamp follows motion: full brightness while
// motion is present, off otherwise. There is no hysteresis, debounce, or
// dimming curve — the command is a pure function of the current frame.
func Decide(frame SensorFrame) LightCommand {
	if frame.IsNight && frame.Motion {
		return LightCommand{LampOn: true, Level: BrightnessFull}
	}
	return LightCommand{LampOn: false, Level: BrightnessOff}
}
