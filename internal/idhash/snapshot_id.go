// Package idhash computes deterministic identifiers from value snapshots.
package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/nirre55/trading-simulator/internal/domain"
)

// ComputeSnapshotID computes a deterministic snapshot ID using SHA256 over
// the parameter fields and variant. Equal snapshots always map to equal IDs,
// so stream clients can correlate a response with the edit that produced it.
// Returns hex-encoded hash (64 characters).
func ComputeSnapshotID(p domain.InputParameters, variant domain.Variant) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s|%s|%g|%g|%g|%g|%g|%g|%g|%g|%t",
		variant,
		p.Symbol,
		p.Balance,
		p.Leverage,
		p.StopLoss,
		p.GainTarget,
		p.MakerFee,
		p.TakerFee,
		p.FundingFee,
		p.Duration,
		p.Recovery,
	)

	// Slices are length-prefixed so adjacent fields cannot alias.
	fmt.Fprintf(&sb, "|%d|%d", p.NumberOfTrades, len(p.EntryPrices))
	for _, price := range p.EntryPrices {
		fmt.Fprintf(&sb, "|%g", price)
	}
	fmt.Fprintf(&sb, "|%g|%g|%d", p.InitialEntryPrice, p.DropPercentage, len(p.DropPercentages))
	for _, drop := range p.DropPercentages {
		fmt.Fprintf(&sb, "|%g", drop)
	}

	hash := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(hash[:])
}
