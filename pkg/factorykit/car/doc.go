// Package car is the abstract-factory use of factorykit.
//
// A brand is a Factory that makes a family of related products: one SUV and
// one Coupe. Clients order products by brand key and never see the concrete
// models, so a Benz order can only ever yield Benz products.
package car
