package ledger

// Delta is a single signed adjustment to one wallet's balance. Every stored
// transaction corresponds to exactly one set of deltas having been applied;
// deleting the transaction applies the negation of the same set.
type Delta struct {
	WalletID string
	Amount   float64
}

// Sign rule per transaction type:
//
//	income    +amount on source
//	expense   -amount on source
//	transfer  -amount on source, +amount on destination (when set)
//
// A transfer with no destination debits the source only. Money leaves the
// system in that case; this mirrors the recorded behavior and is not patched
// over here.
func deltasFor(typ string, amount float64, walletID string, destinationID *string) []Delta {
	switch typ {
	case TypeIncome:
		return []Delta{{WalletID: walletID, Amount: amount}}
	case TypeExpense:
		return []Delta{{WalletID: walletID, Amount: -amount}}
	case TypeTransfer:
		deltas := []Delta{{WalletID: walletID, Amount: -amount}}
		if destinationID != nil && *destinationID != "" {
			deltas = append(deltas, Delta{WalletID: *destinationID, Amount: amount})
		}
		return deltas
	}
	return nil
}

// Deltas returns the balance adjustments that record t on its wallets.
func Deltas(t Transaction) []Delta {
	return deltasFor(t.Type, t.Amount, t.WalletID, t.WalletDestinationID)
}

// Reversal returns the algebraic inverse of Deltas(t), computed from the
// transaction's own stored fields so that the reversal always matches what
// was originally applied.
func Reversal(t Transaction) []Delta {
	deltas := Deltas(t)
	for i := range deltas {
		deltas[i].Amount = -deltas[i].Amount
	}
	return deltas
}

func (p CreateParams) deltas() []Delta {
	return deltasFor(p.Type, p.Amount, p.WalletID, p.WalletDestinationID)
}
