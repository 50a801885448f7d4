package domain

// Subdomain is one of the ten fixed agricultural categories partitioning
// generated content. The set is closed: unknown keys are a caller error.
type Subdomain string

const (
	SubdomainCropCultivation       Subdomain = "crop_cultivation"
	SubdomainLivestockManagement   Subdomain = "livestock_management"
	SubdomainSoilScience           Subdomain = "soil_science"
	SubdomainPestManagement        Subdomain = "pest_management"
	SubdomainIrrigation            Subdomain = "irrigation"
	SubdomainHarvesting            Subdomain = "harvesting"
	SubdomainOrganicFarming        Subdomain = "organic_farming"
	SubdomainAgriculturalMachinery Subdomain = "agricultural_machinery"
	SubdomainCropProtection        Subdomain = "crop_protection"
	SubdomainPostHarvestTechnology Subdomain = "post_harvest_technology"
)

func (s Subdomain) String() string { return string(s) }

func (s Subdomain) IsValid() bool {
	_, ok := subdomainContexts[s]
	return ok
}

// Context returns the descriptive prompt fragment for the subdomain,
// or an empty string for unknown keys.
func (s Subdomain) Context() string {
	return subdomainContexts[s]
}

// Subdomains returns all registered subdomain keys in stable order.
func Subdomains() []Subdomain {
	return []Subdomain{
		SubdomainCropCultivation,
		SubdomainLivestockManagement,
		SubdomainSoilScience,
		SubdomainPestManagement,
		SubdomainIrrigation,
		SubdomainHarvesting,
		SubdomainOrganicFarming,
		SubdomainAgriculturalMachinery,
		SubdomainCropProtection,
		SubdomainPostHarvestTechnology,
	}
}

// subdomainContexts holds the descriptive fragment embedded into generation
// prompts for each subdomain.
var subdomainContexts = map[Subdomain]string{
	SubdomainCropCultivation:       "rice cultivation, vegetable farming, fruit cultivation, grain crops, planting techniques, crop rotation, seeding, transplanting, cultivation methods",
	SubdomainLivestockManagement:   "cattle farming, poultry, dairy production, animal husbandry, veterinary care, livestock feeding, animal health, breeding, farm animals",
	SubdomainSoilScience:           "soil types, soil fertility, soil conservation, fertilizers, soil testing, organic matter, soil pH, soil nutrients, soil erosion",
	SubdomainPestManagement:        "insect pests, weed control, disease management, pesticides, biological control, integrated pest management, pest identification, prevention methods",
	SubdomainIrrigation:            "water management, drip irrigation, sprinkler systems, water conservation, irrigation scheduling, water sources, irrigation methods, water efficiency",
	SubdomainHarvesting:            "harvest techniques, post-harvest handling, storage methods, crop yield, harvesting equipment, harvest timing, crop quality, manual harvesting",
	SubdomainOrganicFarming:        "organic fertilizers, natural pesticides, sustainable practices, certification, organic standards, compost, bio-fertilizers, eco-friendly methods",
	SubdomainAgriculturalMachinery: "tractors, harvesters, plows, cultivators, farm equipment, machinery maintenance, implements, power tools, agricultural technology",
	SubdomainCropProtection:        "plant diseases, pest control, protective measures, crop health, prevention methods, fungicides, insecticides, protective nets",
	SubdomainPostHarvestTechnology: "storage facilities, processing, packaging, quality control, preservation techniques, drying methods, cold storage, transportation",
}
