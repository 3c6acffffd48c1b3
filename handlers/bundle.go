package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Catalog endpoints
	ListServices         gin.HandlerFunc
	GetServiceCategories gin.HandlerFunc
	GetServiceByID       gin.HandlerFunc
	GetServiceMap        gin.HandlerFunc

	// Questionnaire endpoints
	StartQuestionnaire    gin.HandlerFunc
	GetQuestionnaire      gin.HandlerFunc
	AnswerQuestionnaire   gin.HandlerFunc
	AdvanceQuestionnaire  gin.HandlerFunc
	RewindQuestionnaire   gin.HandlerFunc
	CancelQuestionnaire   gin.HandlerFunc
	CompleteQuestionnaire gin.HandlerFunc

	// Checkout endpoints
	GetCheckout         gin.HandlerFunc
	CreatePaymentIntent gin.HandlerFunc
	ConfirmCardPayment  gin.HandlerFunc
	CompleteHSAPayment  gin.HandlerFunc

	// Confirmation endpoints
	GetConfirmation gin.HandlerFunc
	TeardownBooking gin.HandlerFunc

	// Certification endpoints
	ListHSAProviders gin.HandlerFunc
	GenerateLMN      gin.HandlerFunc
	SubmitLMN        gin.HandlerFunc
	DownloadLMN      gin.HandlerFunc
}

// NewHandlerBundle wires the individual handler structs into the flat bundle
// the route registration consumes.
func NewHandlerBundle(
	catalogH *CatalogHandler,
	questionnaireH *QuestionnaireHandler,
	checkoutH *CheckoutHandler,
	confirmationH *ConfirmationHandler,
	certificationH *CertificationHandler,
) *HandlerBundle {
	return &HandlerBundle{
		ListServices:         catalogH.ListServices,
		GetServiceCategories: catalogH.GetServiceCategories,
		GetServiceByID:       catalogH.GetServiceByID,
		GetServiceMap:        catalogH.GetServiceMap,

		StartQuestionnaire:    questionnaireH.StartQuestionnaire,
		GetQuestionnaire:      questionnaireH.GetQuestionnaire,
		AnswerQuestionnaire:   questionnaireH.AnswerQuestionnaire,
		AdvanceQuestionnaire:  questionnaireH.AdvanceQuestionnaire,
		RewindQuestionnaire:   questionnaireH.RewindQuestionnaire,
		CancelQuestionnaire:   questionnaireH.CancelQuestionnaire,
		CompleteQuestionnaire: questionnaireH.CompleteQuestionnaire,

		GetCheckout:         checkoutH.GetCheckout,
		CreatePaymentIntent: checkoutH.CreatePaymentIntent,
		ConfirmCardPayment:  checkoutH.ConfirmCardPayment,
		CompleteHSAPayment:  checkoutH.CompleteHSAPayment,

		GetConfirmation: confirmationH.GetConfirmation,
		TeardownBooking: confirmationH.TeardownBooking,

		ListHSAProviders: certificationH.ListHSAProviders,
		GenerateLMN:      certificationH.GenerateLMN,
		SubmitLMN:        certificationH.SubmitLMN,
		DownloadLMN:      certificationH.DownloadLMN,
	}
}
