package normalize

import "github.com/techmac/taskimport/internal/domain"

// Vocabulary holds the synonym tables used to map free-text status and
// category cells onto canonical values. Keys are cleaned (trimmed,
// lower-cased) raw values. A fresh copy is cheap; callers that extend the
// vocabulary should start from DefaultVocabulary.
type Vocabulary struct {
	Statuses   map[string]domain.Status
	Categories map[string]domain.Category
}

// DefaultVocabulary returns the built-in French/English synonym tables.
// The source workbooks were maintained in both languages, so both sides
// map onto the same canonical values.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Statuses: map[string]domain.Status{
			"done":        domain.StatusDone,
			"completed":   domain.StatusDone,
			"complete":    domain.StatusDone,
			"finished":    domain.StatusDone,
			"terminé":     domain.StatusDone,
			"termine":     domain.StatusDone,
			"fini":        domain.StatusDone,
			"pending":     domain.StatusPending,
			"waiting":     domain.StatusPending,
			"wait":        domain.StatusPending,
			"en attente":  domain.StatusPending,
			"attente":     domain.StatusPending,
			"in-progress": domain.StatusInProgress,
			"in progress": domain.StatusInProgress,
			"inprogress":  domain.StatusInProgress,
			"progress":    domain.StatusInProgress,
			"en cours":    domain.StatusInProgress,
			"cours":       domain.StatusInProgress,
			"working":     domain.StatusInProgress,
			"cancelled":   domain.StatusCancelled,
			"canceled":    domain.StatusCancelled,
			"cancel":      domain.StatusCancelled,
			"annulé":      domain.StatusCancelled,
			"annule":      domain.StatusCancelled,
			"on-hold":     domain.StatusOnHold,
			"on hold":     domain.StatusOnHold,
			"onhold":      domain.StatusOnHold,
			"hold":        domain.StatusOnHold,
			"pause":       domain.StatusOnHold,
			"paused":      domain.StatusOnHold,
			"en pause":    domain.StatusOnHold,
		},
		Categories: map[string]domain.Category{
			"installation":  domain.CategoryInstallation,
			"install":       domain.CategoryInstallation,
			"installing":    domain.CategoryInstallation,
			"setup":         domain.CategoryInstallation,
			"repair":        domain.CategoryRepair,
			"fix":           domain.CategoryRepair,
			"fixing":        domain.CategoryRepair,
			"maintenance":   domain.CategoryRepair,
			"réparation":    domain.CategoryRepair,
			"reparation":    domain.CategoryRepair,
			"development":   domain.CategoryDevelopment,
			"dev":           domain.CategoryDevelopment,
			"programming":   domain.CategoryDevelopment,
			"coding":        domain.CategoryDevelopment,
			"développement": domain.CategoryDevelopment,
			"developpement": domain.CategoryDevelopment,
			"delivery":      domain.CategoryDelivery,
			"shipping":      domain.CategoryDelivery,
			"transport":     domain.CategoryDelivery,
			"expedition":    domain.CategoryDelivery,
			"livraison":     domain.CategoryDelivery,
			"commercial":    domain.CategoryCommercial,
			"sales":         domain.CategoryCommercial,
			"vente":         domain.CategoryCommercial,
			"marketing":     domain.CategoryCommercial,
			"business":      domain.CategoryCommercial,
		},
	}
}
