package services

import (
	"context"

	"github.com/transparify/transparify_backend/internal/dto"
)

// TransparencyReaderSvc defines aggregate read operations for transparency views
type TransparencyReaderSvc interface {
	// GetPublicTransparency returns aggregate stats and a redacted recent
	// donation feed suitable for unauthenticated consumption.
	GetPublicTransparency(ctx context.Context) (*dto.PublicTransparencyResponse, error)

	// GetDonationOverview returns aggregate financial and in-kind stats for the
	// admin dashboard.
	GetDonationOverview(ctx context.Context) (*dto.DonationOverviewResponse, error)

	// GetMyDonations returns the donation history for a donor email.
	GetMyDonations(ctx context.Context, donorEmail string) (*dto.MyDonationsResponse, error)
}

// TransparencySvcFacade combines transparency-related service interfaces
type TransparencySvcFacade interface {
	TransparencyReaderSvc
}
