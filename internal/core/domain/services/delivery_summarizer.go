package services

import (
	"time"

	"hogtrade/internal/core/domain/model/delivery"
	"hogtrade/internal/core/domain/model/kernel"
)

// unspecifiedModeOfPayment is the display placeholder for a delivery whose
// mode of payment was left empty at intake.
const unspecifiedModeOfPayment = "-"

// DeliverySummary is the reporting record computed for one delivery.
//
// AverageFarmgatePrice and AverageWeight are nil when the delivery has zero
// hogs: both averages are undefined in that case and the summary carries an
// explicit absent value instead of NaN or a division error.
type DeliverySummary struct {
	ID                   kernel.UUID
	ArrivalDate          time.Time
	Supplier             string
	ModeOfPayment        string
	NumberOfHogs         int
	TotalLiveWeight      float64
	TotalAmount          float64
	AverageFarmgatePrice *float64
	AverageWeight        *float64
}

// DeliverySummarizer is a domain service that computes the reporting summary
// for a delivery batch: hog count, weight and amount totals, and per-hog
// averages.
//
// Business rules:
//   - Amount per hog is farmgate price per kilogram times live weight
//   - Averages are undefined (nil) for a delivery with zero hogs
//   - An empty mode of payment is normalized to a display placeholder
//
// The summarizer is a pure function of its input: it performs no I/O, mutates
// nothing, and is safe to call repeatedly and concurrently.
type DeliverySummarizer struct{}

// NewDeliverySummarizer creates a new DeliverySummarizer instance.
func NewDeliverySummarizer() DeliverySummarizer {
	return DeliverySummarizer{}
}

// Summarize computes the reporting summary for one delivery with its resolved
// supplier name.
//
// Returns an error only when the delivery was not properly constructed.
func (s DeliverySummarizer) Summarize(d *delivery.Delivery, supplierName string) (DeliverySummary, error) {
	if err := d.Validate(); err != nil {
		return DeliverySummary{}, err
	}

	summary := DeliverySummary{
		ID:            d.ID(),
		ArrivalDate:   d.ArrivalDate(),
		Supplier:      supplierName,
		ModeOfPayment: d.ModeOfPayment(),
	}
	if summary.ModeOfPayment == "" {
		summary.ModeOfPayment = unspecifiedModeOfPayment
	}

	hogs := d.Hogs()
	summary.NumberOfHogs = len(hogs)

	var totalFarmgatePrice float64
	for _, h := range hogs {
		summary.TotalLiveWeight += h.LiveWeight()
		summary.TotalAmount += h.Amount()
		totalFarmgatePrice += h.FarmgatePrice()
	}

	if summary.NumberOfHogs > 0 {
		n := float64(summary.NumberOfHogs)
		averagePrice := totalFarmgatePrice / n
		averageWeight := summary.TotalLiveWeight / n
		summary.AverageFarmgatePrice = &averagePrice
		summary.AverageWeight = &averageWeight
	}

	return summary, nil
}
