package domain

import "math/big"

// VariantDetails is the category-specific payload carried by a Product.
// Exactly one concrete detail struct exists per ProductType; the pairing is
// fixed at construction.
type VariantDetails interface {
	ProductType() ProductType
	validate() error
}

// AromaBombelDetails holds attributes specific to aroma bombels.
type AromaBombelDetails struct {
	Taste *Taste
}

func (AromaBombelDetails) ProductType() ProductType { return ProductTypeAromaBombel }

func (AromaBombelDetails) validate() error { return nil }

// AromaBottleDetails holds attributes specific to aroma bottles.
type AromaBottleDetails struct {
	Taste *Taste
}

func (AromaBottleDetails) ProductType() ProductType { return ProductTypeAromaBottle }

func (AromaBottleDetails) validate() error { return nil }

// AromaDeviceDetails holds attributes specific to aroma devices.
// CoverageSqm is the area in square meters the device can scent.
type AromaDeviceDetails struct {
	Color       *Color
	Format      *string
	Programs    *string
	PlugType    PlugType
	CoverageSqm *big.Rat
}

func (AromaDeviceDetails) ProductType() ProductType { return ProductTypeAromaDevice }

func (d AromaDeviceDetails) validate() error {
	if _, err := ParsePlugType(string(d.PlugType)); err != nil {
		return err
	}
	if d.CoverageSqm != nil && d.CoverageSqm.Sign() < 0 {
		return ErrNegativeCoverageArea
	}
	return nil
}

// SanitizingDeviceDetails holds attributes specific to sanitizing devices.
type SanitizingDeviceDetails struct {
	Color    *Color
	Format   *string
	Programs *string
	PlugType PlugType
}

func (SanitizingDeviceDetails) ProductType() ProductType { return ProductTypeSanitizingDevice }

func (d SanitizingDeviceDetails) validate() error {
	_, err := ParsePlugType(string(d.PlugType))
	return err
}

// BatteryDetails holds attributes specific to batteries.
type BatteryDetails struct {
	BatteryType *string
	Size        *BatterySize
	Brand       *string
}

func (BatteryDetails) ProductType() ProductType { return ProductTypeBattery }

func (BatteryDetails) validate() error { return nil }
