// Package repository owns the data the service layer reads.
//
// There is no database behind this service: the only data set is the fruit
// catalog, held in memory and never written after start-up. Repositories hand
// out copies so no caller can alter what another request sees.
package repository
