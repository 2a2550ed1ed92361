package model

// StatusReport compares the index tip with the node chain height.
type StatusReport struct {
	ChainBlock   int64   `json:"chainBlock"`
	IndexBlock   int64   `json:"indexBlock"`
	Network      Network `json:"network"`
	BlocksBehind *int64  `json:"blocksBehind"`
	Ready        bool    `json:"ready"`
}

// NewStatusReport builds a report. A zero height on either side means "unknown":
// BlocksBehind stays nil and Ready is false, even at genesis.
func NewStatusReport(network Network, chainHeight, indexHeight int64) StatusReport {
	report := StatusReport{
		ChainBlock: chainHeight,
		IndexBlock: indexHeight,
		Network:    network,
	}
	if chainHeight == 0 || indexHeight == 0 {
		return report
	}

	behind := chainHeight - indexHeight
	report.BlocksBehind = &behind
	// the node may already be one block ahead while the index ingests it
	report.Ready = behind <= 1
	return report
}
