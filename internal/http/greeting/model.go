package greeting

// Message is the fixed greeting returned by the root endpoint.
const Message = "Hello, world!"

// Data is the greeting payload. It carries exactly one field.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello, world!"`
}

// Output is the huma response wrapper for the greeting.
type Output struct {
	Body Data
}
