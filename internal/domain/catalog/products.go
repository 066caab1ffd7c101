package catalog

// Static product database for the planetary production chain.
//
// Each table maps an output product to the lower-tier products it is
// refined from. P0 raw materials have no recipe; they can only be
// extracted on a planet whose type supplies them (see resources.go).
// The data is reference material: loaded once at process start and
// never mutated afterwards.

// rawMaterials lists every P0 resource
var rawMaterials = []string{
	"aqueous_liquids",
	"autotrophs",
	"base_metals",
	"carbon_compounds",
	"complex_organisms",
	"felsic_magma",
	"heavy_metals",
	"ionic_solutions",
	"micro_organisms",
	"noble_gas",
	"noble_metals",
	"non_cs_crystals",
	"planktic_colonies",
	"reactive_gas",
	"suspended_plasma",
}

// p1Recipes maps each basic processed material to its single P0 input
var p1Recipes = map[string][]string{
	"bacteria":           {"micro_organisms"},
	"biofuels":           {"carbon_compounds"},
	"biomass":            {"planktic_colonies"},
	"chiral_structures":  {"non_cs_crystals"},
	"electrolytes":       {"ionic_solutions"},
	"industrial_fibers":  {"autotrophs"},
	"oxidizing_compound": {"reactive_gas"},
	"oxygen":             {"noble_gas"},
	"plasmoids":          {"suspended_plasma"},
	"precious_metals":    {"noble_metals"},
	"proteins":           {"complex_organisms"},
	"reactive_metals":    {"base_metals"},
	"silicon":            {"felsic_magma"},
	"toxic_metals":       {"heavy_metals"},
	"water":              {"aqueous_liquids"},
}

// p2Recipes maps each refined commodity to its P1 inputs
var p2Recipes = map[string][]string{
	"biocells":               {"precious_metals", "biofuels"},
	"construction_blocks":    {"toxic_metals", "reactive_metals"},
	"consumer_electronics":   {"chiral_structures", "toxic_metals"},
	"coolant":                {"water", "electrolytes"},
	"enriched_uranium":       {"toxic_metals", "precious_metals"},
	"fertilizer":             {"proteins", "bacteria"},
	"livestock":              {"biofuels", "proteins"},
	"mechanical_parts":       {"precious_metals", "reactive_metals"},
	"microfiber_shielding":   {"silicon", "industrial_fibers"},
	"miniature_electronics":  {"silicon", "chiral_structures"},
	"nanites":                {"reactive_metals", "bacteria"},
	"oxides":                 {"oxygen", "oxidizing_compound"},
	"polyaramids":            {"industrial_fibers", "oxidizing_compound"},
	"polytextiles":           {"industrial_fibers", "biofuels"},
	"rocket_fuel":            {"electrolytes", "plasmoids"},
	"silicate_glass":         {"silicon", "oxidizing_compound"},
	"superconductors":        {"water", "plasmoids"},
	"supertensile_plastics":  {"oxygen", "biomass"},
	"synthetic_oil":          {"oxygen", "electrolytes"},
	"test_cultures":          {"water", "bacteria"},
	"viral_agent":            {"biomass", "bacteria"},
}

// p3Recipes maps each specialized commodity to its P2 inputs
var p3Recipes = map[string][]string{
	"biotech_research_reports":      {"nanites", "livestock", "construction_blocks"},
	"camera_drones":                 {"silicate_glass", "rocket_fuel", "mechanical_parts"},
	"condensates":                   {"oxides", "coolant", "precious_metals"},
	"cryoprotectant_solution":       {"synthetic_oil", "fertilizer", "polytextiles"},
	"data_chips":                    {"nanites", "silicate_glass", "consumer_electronics"},
	"gel_matrix_biopaste":           {"oxides", "biocells", "industrial_fibers"},
	"guidance_systems":              {"consumer_electronics", "mechanical_parts", "miniature_electronics"},
	"hazmat_detection_systems":      {"industrial_fibers", "oxides", "microfiber_shielding"},
	"hermetic_membranes":            {"polytextiles", "silicate_glass", "coolant"},
	"high_tech_transmitters":        {"chiral_structures", "miniature_electronics", "superconductors"},
	"industrial_explosives":         {"fertilizer", "polytextiles", "reactive_metals"},
	"neocoms":                       {"biocells", "construction_blocks", "microfiber_shielding"},
	"nuclear_reactors":              {"enriched_uranium", "microfiber_shielding", "consumer_electronics"},
	"planetary_vehicles":            {"rocket_fuel", "consumer_electronics", "mechanical_parts"},
	"robotics":                      {"mechanical_parts", "consumer_electronics", "precious_metals"},
	"smartfab_units":                {"construction_blocks", "miniature_electronics", "nanites"},
	"supercomputers":                {"coolant", "consumer_electronics", "miniature_electronics"},
	"synthetic_synapses":            {"supertensile_plastics", "test_cultures", "biocells"},
	"transcranial_microcontrollers": {"biocells", "nanites", "silicate_glass"},
	"ukomi_super_conductors":        {"synthetic_oil", "superconductors", "coolant"},
	"vaccines":                      {"livestock", "viral_agent"},
}

// p4Recipes maps each advanced commodity to its inputs. Note that a few
// P4 recipes reach below P3 (sterile_conduit wants P1 water, nano_factory
// wants P1 reactive_metals, organic_mortar_applicators wants P1 bacteria).
var p4Recipes = map[string][]string{
	"broadcast_node":             {"neocoms", "data_chips", "high_tech_transmitters"},
	"integrity_response_drones":  {"gel_matrix_biopaste", "hazmat_detection_systems", "planetary_vehicles"},
	"nano_factory":               {"industrial_explosives", "ukomi_super_conductors", "reactive_metals"},
	"organic_mortar_applicators": {"condensates", "robotics", "bacteria"},
	"recursive_computing_module": {"synthetic_synapses", "guidance_systems", "transcranial_microcontrollers"},
	"self_harmonizing_power_core": {"camera_drones", "nuclear_reactors", "hermetic_membranes"},
	"sterile_conduit":            {"smartfab_units", "vaccines", "water"},
	"wetware_mainframe":          {"supercomputers", "biotech_research_reports", "cryoprotectant_solution"},
}

// buildProductDatabase assembles the full product table keyed by name
func buildProductDatabase() map[string]Product {
	products := make(map[string]Product)

	for _, name := range rawMaterials {
		products[name] = NewRawMaterial(name)
	}
	for name, ingredients := range p1Recipes {
		products[name] = NewProduct(name, TierP1, ingredients)
	}
	for name, ingredients := range p2Recipes {
		products[name] = NewProduct(name, TierP2, ingredients)
	}
	for name, ingredients := range p3Recipes {
		products[name] = NewProduct(name, TierP3, ingredients)
	}
	for name, ingredients := range p4Recipes {
		products[name] = NewProduct(name, TierP4, ingredients)
	}

	return products
}
