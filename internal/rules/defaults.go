package rules

// DefaultRules returns the rule set used on first boot, or when the stored rules can't be read.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:        1,
			Name:      "Cool Day",
			Enabled:   true,
			StartHour: 8,
			EndHour:   19,
			MinTemp:   26.0,
			MaxTemp:   AnyTemp,
			ACOn:      true,
			SetTemp:   27.0,
			FanSpeed:  FanHigh,
			Mode:      ModeCool,
			VSwing:    SwingAuto,
			HSwing:    SwingAuto,
		},
		{
			// quiet cooling at night: less air movement
			ID:        2,
			Name:      "Cool Night",
			Enabled:   true,
			StartHour: 19,
			EndHour:   8,
			MinTemp:   26.0,
			MaxTemp:   AnyTemp,
			ACOn:      true,
			SetTemp:   28.0,
			FanSpeed:  FanLow,
			Mode:      ModeCool,
			VSwing:    SwingMiddle,
			HSwing:    SwingMiddle,
		},
		{
			ID:        3,
			Name:      "Turn Off When Cool",
			Enabled:   true,
			StartHour: AnyHour,
			EndHour:   AnyHour,
			MinTemp:   AnyTemp,
			MaxTemp:   25.9,
			ACOn:      false,
			SetTemp:   24.0,
			FanSpeed:  FanLow,
			Mode:      ModeCool,
			VSwing:    SwingAuto,
			HSwing:    SwingAuto,
		},
	}
}

// DefaultTemplate returns the field values of a newly created rule, before any supplied fields are applied.
func DefaultTemplate() Rule {
	return Rule{
		Name:      "New Rule",
		Enabled:   true,
		StartHour: AnyHour,
		EndHour:   AnyHour,
		MinTemp:   AnyTemp,
		MaxTemp:   AnyTemp,
		ACOn:      true,
		SetTemp:   24.0,
		FanSpeed:  FanAuto,
		Mode:      ModeCool,
		VSwing:    SwingAuto,
		HSwing:    SwingAuto,
	}
}
