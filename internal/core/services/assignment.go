package services

import (
	"fmt"

	"logistics/internal/core/domain/model"
	"logistics/internal/pkg/errs"
)

// Order statuses are free-form strings with no enforced transition order.
const (
	statusProcessing  = "processing"
	statusToBeShipped = "to be shipped"
)

// checkDeliveryUnassigned is the precondition both pick pathways go
// through: a delivery already held by an employee or by a delivery person
// rejects a new pick.
func checkDeliveryUnassigned(delivery model.Delivery) error {
	if delivery.EmployeeID != 0 {
		return errs.NewBusinessRuleError(
			fmt.Sprintf("delivery %d is already assigned to employee %d", delivery.ID, delivery.EmployeeID))
	}
	if delivery.DeliveryPersonID != 0 {
		return errs.NewBusinessRuleError(
			fmt.Sprintf("delivery %d is already assigned to delivery person %d", delivery.ID, delivery.DeliveryPersonID))
	}
	return nil
}
