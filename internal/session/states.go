package session

import "github.com/ilyakav/turfline/internal/flow"

// Career flow states.
const (
	StateMainMenu       flow.State = "main_menu"
	StateCharacterSetup flow.State = "character_setup"
	StateTutorial       flow.State = "tutorial"
	StateTraining       flow.State = "training"
	StateHelp           flow.State = "help"
	StateRacePreview    flow.State = "race_preview"
	StateFieldLineup    flow.State = "field_lineup"
	StateStrategySelect flow.State = "strategy_select"
	StateRaceRunning    flow.State = "race_running"
	StateRaceResults    flow.State = "race_results"
	StateCareerComplete flow.State = "career_complete"
)

// Action IDs dispatched by the flow table.
const (
	actStartCareer   flow.ActionID = "start_career"
	actOpenTutorial  flow.ActionID = "open_tutorial"
	actTutorialNext  flow.ActionID = "tutorial_next"
	actTutorialBack  flow.ActionID = "tutorial_back"
	actOpenHelp      flow.ActionID = "open_help"
	actCloseHelp     flow.ActionID = "close_help"
	actPickBreed1    flow.ActionID = "pick_breed_1"
	actPickBreed2    flow.ActionID = "pick_breed_2"
	actPickBreed3    flow.ActionID = "pick_breed_3"
	actPickBreed4    flow.ActionID = "pick_breed_4"
	actBackToMenu    flow.ActionID = "back_to_menu"
	actTrainSpeed    flow.ActionID = "train_speed"
	actTrainStamina  flow.ActionID = "train_stamina"
	actTrainPower    flow.ActionID = "train_power"
	actTrainRest     flow.ActionID = "train_rest"
	actTrainMedia    flow.ActionID = "train_media"
	actToLineup      flow.ActionID = "to_lineup"
	actToStrategy    flow.ActionID = "to_strategy"
	actPickFront     flow.ActionID = "pick_front"
	actPickMid       flow.ActionID = "pick_mid"
	actPickLate      flow.ActionID = "pick_late"
	actSkipPlayback  flow.ActionID = "skip_playback"
	actConsumeResult flow.ActionID = "consume_result"
	actNewCareer     flow.ActionID = "new_career"
)

// stateTable returns the full career flow table. Legality and input
// dispatch are enumerable data, which is also what the tests walk.
func stateTable() map[flow.State]flow.StateSpec {
	return map[flow.State]flow.StateSpec{
		StateMainMenu: {
			Transitions: set(StateCharacterSetup, StateTutorial, StateHelp),
			Inputs: map[string]flow.ActionID{
				"1": actStartCareer, "start": actStartCareer, flow.ConfirmToken: actStartCareer,
				"2": actOpenTutorial, "tutorial": actOpenTutorial,
				"3": actOpenHelp, "help": actOpenHelp, "h": actOpenHelp,
			},
			AcceptsEmpty: true,
		},
		StateCharacterSetup: {
			Transitions: set(StateTraining, StateMainMenu),
			Inputs: map[string]flow.ActionID{
				"1": actPickBreed1,
				"2": actPickBreed2,
				"3": actPickBreed3,
				"4": actPickBreed4,
				"b": actBackToMenu, "back": actBackToMenu,
			},
		},
		StateTutorial: {
			Transitions: set(StateTutorial, StateMainMenu),
			Inputs: map[string]flow.ActionID{
				flow.ConfirmToken: actTutorialNext,
				"b":               actTutorialBack, "back": actTutorialBack, "skip": actTutorialBack,
			},
			AcceptsEmpty: true,
		},
		StateTraining: {
			Transitions: set(StateRacePreview, StateHelp, StateCareerComplete),
			Inputs: map[string]flow.ActionID{
				"1": actTrainSpeed, "speed": actTrainSpeed,
				"2": actTrainStamina, "stamina": actTrainStamina,
				"3": actTrainPower, "power": actTrainPower,
				"4": actTrainRest, "rest": actTrainRest,
				"5": actTrainMedia, "media": actTrainMedia,
				"h": actOpenHelp, "help": actOpenHelp,
			},
		},
		StateHelp: {
			Transitions: set(StateMainMenu, StateTraining),
			Inputs: map[string]flow.ActionID{
				flow.ConfirmToken: actCloseHelp,
				"b":               actCloseHelp, "back": actCloseHelp,
			},
			AcceptsEmpty: true,
		},
		StateRacePreview: {
			Transitions: set(StateFieldLineup),
			Inputs: map[string]flow.ActionID{
				flow.ConfirmToken: actToLineup,
			},
			AcceptsEmpty: true,
		},
		StateFieldLineup: {
			Transitions: set(StateStrategySelect),
			Inputs: map[string]flow.ActionID{
				flow.ConfirmToken: actToStrategy,
			},
			AcceptsEmpty: true,
		},
		StateStrategySelect: {
			Transitions: set(StateRaceRunning),
			Inputs: map[string]flow.ActionID{
				"1": actPickFront, "front": actPickFront,
				"2": actPickMid, "mid": actPickMid,
				"3": actPickLate, "late": actPickLate,
			},
		},
		StateRaceRunning: {
			Transitions: set(StateRaceResults),
			Inputs: map[string]flow.ActionID{
				flow.ConfirmToken: actSkipPlayback,
				"skip":            actSkipPlayback,
			},
			AcceptsEmpty: true,
		},
		StateRaceResults: {
			Transitions: set(StateTraining, StateCareerComplete),
			Inputs: map[string]flow.ActionID{
				flow.ConfirmToken: actConsumeResult,
			},
			AcceptsEmpty: true,
		},
		StateCareerComplete: {
			Transitions: set(StateMainMenu),
			Inputs: map[string]flow.ActionID{
				flow.ConfirmToken: actNewCareer,
			},
			AcceptsEmpty: true,
		},
	}
}

func set(states ...flow.State) map[flow.State]bool {
	m := make(map[flow.State]bool, len(states))
	for _, s := range states {
		m[s] = true
	}
	return m
}
