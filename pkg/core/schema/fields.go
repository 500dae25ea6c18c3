package schema

// allFields is the compile-time field table (spec §3, §9). Every field that
// the pipeline can extract is declared here exactly once; there is no way
// to fabricate a field at runtime. Grouped by feature group for readability;
// order within a group has no semantic meaning.
var allFields = []Field{
	// --- demographics (static) ---
	{Name: "sexe", Label: "Sexe", Type: TypeCategorical, Allowed: []string{"M", "F"}, Group: GroupDemographics, Temporal: Static},
	{Name: "date_naissance", Label: "Date de naissance", Type: TypeDate, Group: GroupDemographics, Temporal: Static},
	{Name: "date_diagnostic", Label: "Date de diagnostic", Type: TypeDate, Group: GroupDemographics, Temporal: Static},
	{Name: "date_deces", Label: "Date de décès", Type: TypeDate, Group: GroupDemographics, Temporal: Static},
	{Name: "cause_deces", Label: "Cause du décès", Type: TypeFreeText, Group: GroupDemographics, Temporal: Static},
	{Name: "equipe_referente", Label: "Équipe référente", Type: TypeString, Group: GroupDemographics, Temporal: Static},
	{Name: "lateralite", Label: "Latéralité tumorale", Type: TypeCategorical, Allowed: []string{"droite", "gauche", "bilaterale"}, Group: GroupDemographics, Temporal: Static},
	{Name: "neurochirurgien", Label: "Neurochirurgien référent", Type: TypeString, Group: GroupDemographics, Temporal: Static},
	{Name: "neuroncologue", Label: "Neuro-oncologue référent", Type: TypeString, Group: GroupDemographics, Temporal: Static},
	{Name: "radiotherapeute", Label: "Radiothérapeute référent", Type: TypeString, Group: GroupDemographics, Temporal: Static},

	// --- diagnosis (specimen-bound) ---
	{Name: "diagnostic", Label: "Diagnostic histologique", Type: TypeFreeText, Group: GroupDiagnosis, Temporal: SpecimenBound},
	{Name: "grade", Label: "Grade tumoral", Type: TypeInteger, Allowed: []string{"1", "2", "3", "4"}, Group: GroupDiagnosis, Temporal: SpecimenBound},
	{Name: "mitoses_count", Label: "Nombre de mitoses", Type: TypeInteger, Group: GroupDiagnosis, Temporal: SpecimenBound},
	{Name: "histo_necrose", Label: "Nécrose", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupDiagnosis, Temporal: SpecimenBound},
	{Name: "histo_pec", Label: "Prolifération endothélio-capillaire", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupDiagnosis, Temporal: SpecimenBound},
	{Name: "classification_oms", Label: "Classification OMS", Type: TypeString, Group: GroupDiagnosis, Temporal: SpecimenBound},
	{Name: "diag_integre", Label: "Diagnostic intégré", Type: TypeFreeText, Group: GroupDiagnosis, Temporal: SpecimenBound},

	// --- ihc (specimen-bound) ---
	{Name: "ihc_idh1", Label: "IHC IDH1", Type: TypeCategorical, Allowed: []string{"positif", "negatif"}, Group: GroupIHC, Temporal: SpecimenBound},
	{Name: "ihc_atrx", Label: "IHC ATRX", Type: TypeCategorical, Allowed: []string{"maintenu", "negatif"}, Group: GroupIHC, Temporal: SpecimenBound},
	{Name: "ihc_h3k27me3", Label: "IHC H3K27me3", Type: TypeCategorical, Allowed: []string{"maintenu", "negatif"}, Group: GroupIHC, Temporal: SpecimenBound},
	{Name: "ihc_mmr", Label: "IHC MMR", Type: TypeCategorical, Allowed: []string{"maintenu", "negatif"}, Group: GroupIHC, Temporal: SpecimenBound},
	{Name: "ihc_gfap", Label: "IHC GFAP", Type: TypeCategorical, Allowed: []string{"positif", "negatif"}, Group: GroupIHC, Temporal: SpecimenBound},
	{Name: "ihc_p53", Label: "IHC p53", Type: TypeCategorical, Allowed: []string{"positif", "negatif"}, Group: GroupIHC, Temporal: SpecimenBound},
	{Name: "ki67", Label: "Index de prolifération Ki67 (%)", Type: TypeFloat, Group: GroupIHC, Temporal: SpecimenBound},
	{Name: "ihc_olig2", Label: "IHC OLIG2", Type: TypeCategorical, Allowed: []string{"positif", "negatif"}, Group: GroupIHC, Temporal: SpecimenBound},
	{Name: "ihc_braf", Label: "IHC BRAF V600E", Type: TypeCategorical, Allowed: []string{"positif", "negatif"}, Group: GroupIHC, Temporal: SpecimenBound},
	{Name: "ihc_fgfr3", Label: "IHC FGFR3", Type: TypeCategorical, Allowed: []string{"positif", "negatif"}, Group: GroupIHC, Temporal: SpecimenBound},
	{Name: "ihc_h3k27m", Label: "IHC H3K27M (mutant-spécifique)", Type: TypeCategorical, Allowed: []string{"positif", "negatif"}, Group: GroupIHC, Temporal: SpecimenBound},
	{Name: "ihc_egfr_hirsch", Label: "IHC EGFR (score de Hirsch)", Type: TypeCategorical, Allowed: []string{"0", "1+", "2+", "3+"}, Group: GroupIHC, Temporal: SpecimenBound},

	// --- molecular (specimen-bound) ---
	{Name: "mol_mgmt", Label: "Statut MGMT", Type: TypeCategorical, Allowed: []string{"methyle", "non methyle"}, Group: GroupMolecular, Temporal: SpecimenBound},
	{Name: "mol_idh1", Label: "Statut mutationnel IDH1", Type: TypeString, Group: GroupMolecular, Temporal: SpecimenBound, Validator: ValidatorMolecular},
	{Name: "mol_tp53", Label: "Statut mutationnel TP53", Type: TypeString, Group: GroupMolecular, Temporal: SpecimenBound, Validator: ValidatorMolecular},
	{Name: "mol_atrx", Label: "Statut mutationnel ATRX", Type: TypeString, Group: GroupMolecular, Temporal: SpecimenBound, Validator: ValidatorMolecular},
	{Name: "mol_braf", Label: "Statut mutationnel BRAF", Type: TypeString, Group: GroupMolecular, Temporal: SpecimenBound, Validator: ValidatorMolecular},
	{Name: "mol_tert", Label: "Statut promoteur TERT", Type: TypeString, Group: GroupMolecular, Temporal: SpecimenBound, Validator: ValidatorMolecular},
	{Name: "amp_mdm2", Label: "Amplification MDM2", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupMolecular, Temporal: SpecimenBound},
	{Name: "amp_cdk4", Label: "Amplification CDK4", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupMolecular, Temporal: SpecimenBound},
	{Name: "amp_egfr", Label: "Amplification EGFR", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupMolecular, Temporal: SpecimenBound},
	{Name: "amp_met", Label: "Amplification MET", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupMolecular, Temporal: SpecimenBound},
	{Name: "amp_mdm4", Label: "Amplification MDM4", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupMolecular, Temporal: SpecimenBound},
	{Name: "fusion_fgfr", Label: "Fusion FGFR", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupMolecular, Temporal: SpecimenBound},
	{Name: "fusion_ntrk", Label: "Fusion NTRK", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupMolecular, Temporal: SpecimenBound},
	{Name: "fusion_autre", Label: "Autre fusion/réarrangement", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupMolecular, Temporal: SpecimenBound},
	{Name: "mol_cic", Label: "Statut mutationnel CIC", Type: TypeString, Group: GroupMolecular, Temporal: SpecimenBound, Validator: ValidatorMolecular},
	{Name: "mol_fubp1", Label: "Statut mutationnel FUBP1", Type: TypeString, Group: GroupMolecular, Temporal: SpecimenBound, Validator: ValidatorMolecular},
	{Name: "mol_pten", Label: "Statut mutationnel PTEN", Type: TypeString, Group: GroupMolecular, Temporal: SpecimenBound, Validator: ValidatorMolecular},
	{Name: "mol_idh2", Label: "Statut mutationnel IDH2", Type: TypeString, Group: GroupMolecular, Temporal: SpecimenBound, Validator: ValidatorMolecular},
	{Name: "mol_cdkn2a", Label: "Délétion homozygote CDKN2A/B", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupMolecular, Temporal: SpecimenBound},

	// --- chromosomal (specimen-bound) ---
	{Name: "ch1p", Label: "1p", Type: TypeCategorical, Allowed: []string{"gain", "perte", "perte partielle"}, Group: GroupChromosomal, Temporal: SpecimenBound},
	{Name: "ch19q", Label: "19q", Type: TypeCategorical, Allowed: []string{"gain", "perte", "perte partielle"}, Group: GroupChromosomal, Temporal: SpecimenBound},
	{Name: "ch10p", Label: "10p", Type: TypeCategorical, Allowed: []string{"gain", "perte", "perte partielle"}, Group: GroupChromosomal, Temporal: SpecimenBound},
	{Name: "ch10q", Label: "10q", Type: TypeCategorical, Allowed: []string{"gain", "perte", "perte partielle"}, Group: GroupChromosomal, Temporal: SpecimenBound},
	{Name: "ch7p", Label: "7p", Type: TypeCategorical, Allowed: []string{"gain", "perte", "perte partielle"}, Group: GroupChromosomal, Temporal: SpecimenBound},
	{Name: "ch7q", Label: "7q", Type: TypeCategorical, Allowed: []string{"gain", "perte", "perte partielle"}, Group: GroupChromosomal, Temporal: SpecimenBound},
	{Name: "ch9p", Label: "9p", Type: TypeCategorical, Allowed: []string{"gain", "perte", "perte partielle"}, Group: GroupChromosomal, Temporal: SpecimenBound},
	{Name: "ch9q", Label: "9q", Type: TypeCategorical, Allowed: []string{"gain", "perte", "perte partielle"}, Group: GroupChromosomal, Temporal: SpecimenBound},

	// --- symptoms (mostly time-varying; first-symptom flags are static) ---
	{Name: "epilepsie", Label: "Épilepsie", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupSymptoms, Temporal: TimeVarying},
	{Name: "ceph_hic", Label: "Céphalées d'HIC", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupSymptoms, Temporal: TimeVarying},
	{Name: "deficit", Label: "Déficit neurologique", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupSymptoms, Temporal: TimeVarying},
	{Name: "cognitif", Label: "Troubles cognitifs", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupSymptoms, Temporal: TimeVarying},
	{Name: "contraste_1er_symptome", Label: "Prise de contraste au 1er symptôme", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupSymptoms, Temporal: Static},
	{Name: "oedeme_1er_symptome", Label: "Œdème au 1er symptôme", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupSymptoms, Temporal: Static},
	{Name: "calcif_1er_symptome", Label: "Calcifications au 1er symptôme", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupSymptoms, Temporal: Static},
	{Name: "antecedent_tumoral", Label: "Antécédent tumoral", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupSymptoms, Temporal: Static},
	{Name: "ik", Label: "Indice de Karnofsky", Type: TypeInteger, Group: GroupSymptoms, Temporal: TimeVarying},
	{Name: "epilepsie_1er_symptome", Label: "Épilepsie au 1er symptôme", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupSymptoms, Temporal: Static},
	{Name: "ceph_hic_1er_symptome", Label: "Céphalées d'HIC au 1er symptôme", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupSymptoms, Temporal: Static},
	{Name: "deficit_1er_symptome", Label: "Déficit neurologique au 1er symptôme", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupSymptoms, Temporal: Static},
	{Name: "cognitif_1er_symptome", Label: "Troubles cognitifs au 1er symptôme", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupSymptoms, Temporal: Static},
	{Name: "autre_trouble", Label: "Autre trouble neurologique", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupSymptoms, Temporal: TimeVarying},
	{Name: "autre_trouble_1er_symptome", Label: "Autre trouble neurologique au 1er symptôme", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupSymptoms, Temporal: Static},

	// --- treatment (time-varying) ---
	{Name: "chir_date", Label: "Date(s) de chirurgie", Type: TypeDate, Group: GroupTreatment, Temporal: TimeVarying},
	{Name: "date_chir", Label: "Date de chirurgie (alias historique)", Type: TypeDate, Group: GroupTreatment, Temporal: TimeVarying},
	{Name: "chm_date_debut", Label: "Date(s) de début de chimiothérapie", Type: TypeDate, Group: GroupTreatment, Temporal: TimeVarying},
	{Name: "chm_date_fin", Label: "Date(s) de fin de chimiothérapie", Type: TypeDate, Group: GroupTreatment, Temporal: TimeVarying},
	{Name: "chimios", Label: "Protocoles de chimiothérapie", Type: TypeFreeText, Group: GroupTreatment, Temporal: TimeVarying},
	{Name: "chm_cycles", Label: "Nombre de cycles de chimiothérapie", Type: TypeInteger, Group: GroupTreatment, Temporal: TimeVarying},
	{Name: "rx_date_debut", Label: "Date(s) de début de radiothérapie", Type: TypeDate, Group: GroupTreatment, Temporal: TimeVarying},
	{Name: "rx_date_fin", Label: "Date(s) de fin de radiothérapie", Type: TypeDate, Group: GroupTreatment, Temporal: TimeVarying},
	{Name: "rx_dose", Label: "Dose de radiothérapie (Gy)", Type: TypeFloat, Group: GroupTreatment, Temporal: TimeVarying},
	{Name: "localisation_chir", Label: "Localisation du geste chirurgical", Type: TypeFreeText, Group: GroupTreatment, Temporal: TimeVarying},
	{Name: "type_chirurgie", Label: "Type de chirurgie", Type: TypeCategorical, Allowed: []string{"biopsie", "exerese partielle", "exerese complete"}, Group: GroupTreatment, Temporal: TimeVarying},
	{Name: "localisation_radiotherapie", Label: "Localisation du champ de radiothérapie", Type: TypeFreeText, Group: GroupTreatment, Temporal: TimeVarying},
	{Name: "corticoides", Label: "Corticoïdes", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupTreatment, Temporal: TimeVarying},
	{Name: "optune", Label: "Optune (TTFields)", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupTreatment, Temporal: TimeVarying},
	{Name: "anti_epileptiques", Label: "Traitement anti-épileptique", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupTreatment, Temporal: TimeVarying},
	{Name: "essai_therapeutique", Label: "Inclusion en essai thérapeutique", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupTreatment, Temporal: TimeVarying},

	// --- evolution (time-varying) ---
	{Name: "evolution", Label: "Étape évolutive", Type: TypeString, Group: GroupEvolution, Temporal: TimeVarying, Validator: ValidatorEvolution},
	{Name: "date_progression", Label: "Date(s) de progression", Type: TypeDate, Group: GroupEvolution, Temporal: TimeVarying},
	{Name: "progress_clinique", Label: "Progression clinique", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupEvolution, Temporal: TimeVarying},
	{Name: "progress_radiologique", Label: "Progression radiologique", Type: TypeCategorical, Allowed: []string{"oui", "non"}, Group: GroupEvolution, Temporal: TimeVarying},
}
