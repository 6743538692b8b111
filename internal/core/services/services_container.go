package services

import (
	"github.com/transparify/transparify_backend/internal/core/ports/gateways"
	portsrepo "github.com/transparify/transparify_backend/internal/core/ports/repositories"
	portssvc "github.com/transparify/transparify_backend/internal/core/ports/services"
)

// GatewayProvider holds the external collaborators the services depend on.
type GatewayProvider struct {
	Payment       gateways.PaymentGateway
	Renderer      gateways.ReceiptRenderer
	ArtifactStore gateways.ReceiptArtifactStore
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, gw GatewayProvider, verifyBaseURL string) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.CampaignRepo, gw.Payment)
	container.Campaign = NewCampaignService(repos.CampaignRepo, container.Transaction)
	container.Receipt = NewReceiptService(repos.TransactionRepo, repos.ReceiptRepo, gw.Renderer, gw.ArtifactStore, verifyBaseURL)
	container.Transparency = NewTransparencyService(repos.TransactionRepo)
	container.User = NewUserService(repos.UserRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransactionSvcFacade  = (*transactionService)(nil)
	_ portssvc.CampaignSvcFacade     = (*campaignService)(nil)
	_ portssvc.ReceiptSvcFacade      = (*receiptService)(nil)
	_ portssvc.TransparencySvcFacade = (*transparencyService)(nil)
	_ portssvc.UserSvcFacade         = (*userService)(nil)
)
