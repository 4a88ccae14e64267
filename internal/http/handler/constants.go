package handler

const (
	paramID = "id"

	jsonKeyError   = "error"
	jsonKeyClient  = "client"
	jsonKeyClients = "clients"
	jsonKeyMessage = "message"
	jsonKeySuccess = "success"

	msgClientNotFound   = "Client not found"
	msgCreateClientFail = "Unable to create client"
	msgUpdateClientFail = "Unable to update client"
	msgDeleteClientFail = "Unable to delete client"
	msgSignupFail       = "We couldn't save your request right now. Please try again in a few moments."
	msgSignupThanks     = "Thank you! Your request has been submitted successfully."
)
