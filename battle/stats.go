package battle

// ComputeStat turns a base stat into a battle value. The ruleset fixes IVs
// and EVs at zero, so the formula collapses to base, level, nature and
// stage. All division is floor division, matching the cartridge order:
// raw value, then nature, then stage ratio.
//
// Stage is ignored for HP. Unknown stat names and stages outside [-6, 6]
// return an InvalidStatError.
func ComputeStat(stat string, base uint, level uint, nature Nature, stage int) (int, error) {
	if stage < -6 || stage > 6 {
		return 0, InvalidStatError{Stat: stat, Stage: stage}
	}

	if stat == STAT_HP {
		return int((2*base*level)/100 + level + 10), nil
	}

	switch stat {
	case STAT_ATTACK, STAT_DEFENSE, STAT_SPATTACK, STAT_SPDEF, STAT_SPEED:
	default:
		return 0, InvalidStatError{Stat: stat, Stage: stage}
	}

	value := int((2*base*level)/100 + 5)

	if nature.Plus == stat {
		value = value * 110 / 100
	} else if nature.Minus == stat {
		value = value * 90 / 100
	}

	value = stageRatios[stage].Apply(value)
	if value < 1 {
		value = 1
	}

	return value, nil
}
