package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// fieldLabels names request struct fields in client messages.
var fieldLabels = map[string]string{
	"MinutesToComplete": "Minutes to complete",
}

// bindingMessages turns a ShouldBindJSON error into client messages. Body
// decoding errors collapse into MsgValidationErrors.
func bindingMessages(err error) []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{MsgValidationErrors}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldMessage(fe))
	}
	return messages
}

func fieldMessage(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return label + " must be present"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", label, fe.Param())
	case "max":
		return label + " is too long"
	case "gte":
		return label + " must not be negative"
	default:
		return label + " is invalid"
	}
}
