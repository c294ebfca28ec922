package models

// Outcome categorizes the result of a consumption attempt
type Outcome string

const (
	// OutcomeDepleted indicates the drink had no portions left; nothing changed
	OutcomeDepleted Outcome = "depleted"

	// OutcomeLastPortion indicates the drink was consumed and its stock is now empty
	OutcomeLastPortion Outcome = "last_portion"

	// OutcomeConsumed indicates a plain successful consumption
	OutcomeConsumed Outcome = "consumed"

	// OutcomePreOverdose indicates the consumption landed the person above 80
	OutcomePreOverdose Outcome = "pre_overdose"

	// OutcomeOverdose indicates the consumption pushed the person to 100 or beyond
	OutcomeOverdose Outcome = "overdose"
)
