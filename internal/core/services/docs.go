// Package services implements the business operations of the logistics
// core. Five services (Customer, Seller, Employee, DeliveryPerson, User)
// compose repositories and keep the cross-entity relationships consistent;
// no repository is ever mutated from outside a service.
//
// Error policy: a missing primary entity is an ObjectNotFoundError, an
// invalid relationship between existing entities is a BusinessRuleError,
// and backend failures propagate as StorageErrors. Every failed operation
// fails independently; there are no retries and no cross-collection
// transactions.
package services
