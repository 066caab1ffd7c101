package catalog

// ResourcePlanetMap maps each P0 raw resource to the planet types able
// to supply it. Like the product database this is fixed reference data;
// a planet's own declared resource list never overrides it.
var ResourcePlanetMap = map[string][]PlanetType{
	"aqueous_liquids":   {PlanetOceanic, PlanetTemperate},
	"autotrophs":        {PlanetTemperate},
	"base_metals":       {PlanetBarren, PlanetLava, PlanetPlasma},
	"carbon_compounds":  {PlanetGas, PlanetTemperate},
	"complex_organisms": {PlanetTemperate},
	"felsic_magma":      {PlanetLava},
	"heavy_metals":      {PlanetBarren, PlanetLava, PlanetPlasma},
	"ionic_solutions":   {PlanetGas, PlanetStorm},
	"micro_organisms":   {PlanetOceanic, PlanetTemperate},
	"noble_gas":         {PlanetGas, PlanetIce},
	"noble_metals":      {PlanetBarren, PlanetPlasma},
	"non_cs_crystals":   {PlanetIce, PlanetPlasma},
	"planktic_colonies": {PlanetOceanic},
	"reactive_gas":      {PlanetGas, PlanetStorm},
	"suspended_plasma":  {PlanetGas, PlanetPlasma, PlanetStorm},
}

// extractionBound is the fixed set of P4 products whose production
// strategy must extract one raw resource locally instead of importing
// the complete ingredient closure.
var extractionBound = map[string]bool{
	"nano_factory":               true,
	"organic_mortar_applicators": true,
	"sterile_conduit":            true,
}

// RequiresExtraction reports whether the named P4 product is bound to
// local raw-resource extraction.
func RequiresExtraction(productName string) bool {
	return extractionBound[productName]
}
