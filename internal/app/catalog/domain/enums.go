package domain

// ProductType discriminates the five fixed product categories.
// It is set once at construction and never changes afterwards.
type ProductType string

const (
	ProductTypeAromaBombel      ProductType = "aroma_bombel"
	ProductTypeAromaBottle      ProductType = "aroma_bottle"
	ProductTypeAromaDevice      ProductType = "aroma_device"
	ProductTypeSanitizingDevice ProductType = "sanitizing_device"
	ProductTypeBattery          ProductType = "battery"
)

// ParseProductType validates a raw discriminator value.
func ParseProductType(raw string) (ProductType, error) {
	switch ProductType(raw) {
	case ProductTypeAromaBombel, ProductTypeAromaBottle, ProductTypeAromaDevice,
		ProductTypeSanitizingDevice, ProductTypeBattery:
		return ProductType(raw), nil
	}
	return "", ErrUnknownProductType
}

// Taste is the scent category of aroma consumables.
type Taste string

const (
	TasteLavender Taste = "lavender"
	TasteVanilla  Taste = "vanilla"
	TasteCitrus   Taste = "citrus"
	TasteOcean    Taste = "ocean"
)

func ParseTaste(raw string) (Taste, error) {
	switch Taste(raw) {
	case TasteLavender, TasteVanilla, TasteCitrus, TasteOcean:
		return Taste(raw), nil
	}
	return "", ErrUnknownTaste
}

// Color is the casing color of devices.
type Color string

const (
	ColorWhite  Color = "white"
	ColorBlack  Color = "black"
	ColorGray   Color = "gray"
	ColorSilver Color = "silver"
	ColorGold   Color = "gold"
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorPink   Color = "pink"
	ColorPurple Color = "purple"
	ColorBrown  Color = "brown"
)

func ParseColor(raw string) (Color, error) {
	switch Color(raw) {
	case ColorWhite, ColorBlack, ColorGray, ColorSilver, ColorGold, ColorRed,
		ColorBlue, ColorGreen, ColorPink, ColorPurple, ColorBrown:
		return Color(raw), nil
	}
	return "", ErrUnknownColor
}

// PlugType is the mains connector of powered devices.
type PlugType string

const (
	PlugTypeEU  PlugType = "eu"
	PlugTypeUSB PlugType = "usb"
)

func ParsePlugType(raw string) (PlugType, error) {
	switch PlugType(raw) {
	case PlugTypeEU, PlugTypeUSB:
		return PlugType(raw), nil
	}
	return "", ErrUnknownPlugType
}

// BatterySize is the physical battery format.
type BatterySize string

const (
	BatterySizeAA  BatterySize = "aa"
	BatterySizeAAA BatterySize = "aaa"
)

func ParseBatterySize(raw string) (BatterySize, error) {
	switch BatterySize(raw) {
	case BatterySizeAA, BatterySizeAAA:
		return BatterySize(raw), nil
	}
	return "", ErrUnknownBatterySize
}
