package battle

import "github.com/samber/lo"

type Stats struct {
	Hp       uint
	Attack   uint
	Def      uint
	SpAttack uint
	SpDef    uint
	Speed    uint
}

// Species is the static dex entry a battle Pokemon is built from.
type Species struct {
	DexNumber uint
	Name      string
	Type1     string
	Type2     string
	Abilities []string
	Learnset  []string
	Stats     Stats
}

func (s Species) Types() []string {
	if s.Type2 == "" {
		return []string{s.Type1}
	}

	return []string{s.Type1, s.Type2}
}

// CanLearn reports whether the species' learnset contains a move. An
// empty learnset means the data shipped without one, so any move goes.
func (s Species) CanLearn(moveName string) bool {
	return len(s.Learnset) == 0 || lo.Contains(s.Learnset, moveName)
}

// StatStages are clamped to [-6, 6] and reset when a pokemon leaves the
// field.
type StatStages struct {
	Attack   int
	Def      int
	SpAttack int
	SpDef    int
	Speed    int
	Accuracy int
	Evasion  int
}

func (s *StatStages) Get(stat string) int {
	switch stat {
	case STAT_ATTACK:
		return s.Attack
	case STAT_DEFENSE:
		return s.Def
	case STAT_SPATTACK:
		return s.SpAttack
	case STAT_SPDEF:
		return s.SpDef
	case STAT_SPEED:
		return s.Speed
	case STAT_ACCURACY:
		return s.Accuracy
	case STAT_EVASION:
		return s.Evasion
	}

	return 0
}

// Change shifts a stage by delta, clamping at the caps, and returns the
// new value.
func (s *StatStages) Change(stat string, delta int) int {
	newStage := clampStage(s.Get(stat) + delta)

	switch stat {
	case STAT_ATTACK:
		s.Attack = newStage
	case STAT_DEFENSE:
		s.Def = newStage
	case STAT_SPATTACK:
		s.SpAttack = newStage
	case STAT_SPDEF:
		s.SpDef = newStage
	case STAT_SPEED:
		s.Speed = newStage
	case STAT_ACCURACY:
		s.Accuracy = newStage
	case STAT_EVASION:
		s.Evasion = newStage
	}

	return newStage
}

func (s *StatStages) Clear() {
	*s = StatStages{}
}

func clampStage(stage int) int {
	if stage > 6 {
		return 6
	}
	if stage < -6 {
		return -6
	}

	return stage
}

// Pokemon is the in-battle state of a single party member.
type Pokemon struct {
	Base     *Species
	Nickname string
	Level    uint
	Nature   Nature
	Ability  string
	Item     string

	Hp    uint
	MaxHp uint

	Status     int
	SleepCount int
	ToxicCount int
	Flinched   bool

	Stages StatStages
	Moves  []MoveData
}

func (p Pokemon) Name() string {
	if p.Nickname != "" {
		return p.Nickname
	}

	return p.Base.Name
}

func (p Pokemon) Alive() bool {
	return p.Hp > 0
}

func (p Pokemon) Types() []string {
	return p.Base.Types()
}

func (p Pokemon) HasType(typeName string) bool {
	return p.Base.Type1 == typeName || p.Base.Type2 == typeName
}

func (p *Pokemon) ApplyDamage(damage int) {
	if damage < 0 {
		damage = 0
	}

	if uint(damage) >= p.Hp {
		p.Hp = 0
		return
	}

	p.Hp -= uint(damage)
}

func (p *Pokemon) HealDamage(heal int) {
	if heal < 0 {
		heal = 0
	}

	p.Hp += uint(heal)
	if p.Hp > p.MaxHp {
		p.Hp = p.MaxHp
	}
}

func (p Pokemon) baseStat(stat string) uint {
	switch stat {
	case STAT_HP:
		return p.Base.Stats.Hp
	case STAT_ATTACK:
		return p.Base.Stats.Attack
	case STAT_DEFENSE:
		return p.Base.Stats.Def
	case STAT_SPATTACK:
		return p.Base.Stats.SpAttack
	case STAT_SPDEF:
		return p.Base.Stats.SpDef
	case STAT_SPEED:
		return p.Base.Stats.Speed
	}

	return 0
}

// EffectiveStat applies level, nature and the current stage. Only valid
// for the five non-HP battle stats.
func (p Pokemon) EffectiveStat(stat string) int {
	value, err := ComputeStat(stat, p.baseStat(stat), p.Level, p.Nature, p.Stages.Get(stat))
	if err != nil {
		internalLogger.Error(err, "effective stat lookup failed", "stat", stat)
		return 1
	}

	return value
}

// EffectiveSpeed folds in weather abilities and the ruleset's paralysis
// penalty, which quarters speed.
func (p Pokemon) EffectiveSpeed(field *FieldState) int {
	speed := p.EffectiveStat(STAT_SPEED)

	if field != nil {
		if p.Ability == "swift-swim" && field.Weather == WEATHER_RAIN {
			speed *= 2
		}
		if p.Ability == "chlorophyll" && field.Weather == WEATHER_SUN {
			speed *= 2
		}
	}

	if p.Status == STATUS_PARA {
		speed /= 4
	}

	return speed
}

func (p Pokemon) IsGrounded() bool {
	if p.HasType(TYPENAME_FLYING) {
		return false
	}
	if p.Ability == "levitate" {
		return false
	}
	if p.Item == "air-balloon" {
		return false
	}

	return true
}

var statusNames = map[int]string{
	STATUS_NONE:   "",
	STATUS_SLEEP:  "SLP",
	STATUS_PARA:   "PAR",
	STATUS_FROZEN: "FRZ",
	STATUS_BURN:   "BRN",
	STATUS_POISON: "PSN",
	STATUS_TOXIC:  "TOX",
}

func StatusName(status int) string {
	return statusNames[status]
}
