package i18n

// catalog holds every user-visible string of the portal, keyed by language
// and message key. Spanish is the reference set: a key missing here in
// another language falls back to the Spanish entry.
var catalog = map[Lang]map[string]string{
	LangES: {
		"status.PENDING":     "Pendiente",
		"status.CONFIRMED":   "Confirmada",
		"status.CANCELLED":   "Cancelada",
		"status.COMPLETED":   "Completada",
		"status.IN_PROGRESS": "En curso",

		"cancel.refundable":    "Su reserva será cancelada y recibirá un reembolso completo de %.0f€",
		"cancel.nonRefundable": "Su reserva será cancelada. El anticipo de %.0f€ no será reembolsado (cancelación con menos de %d h de antelación)",

		"extension.paid":    "Tarjeta (pagado)",
		"extension.pending": "En agencia (pendiente)",

		"assistance.header":   "*ASISTENCIA SOLICITADA*",
		"assistance.customer": "Cliente",
		"assistance.email":    "Email",
		"assistance.vehicle":  "*Vehiculo:*",
		"assistance.location": "*Ubicacion:*",

		"profile.saved": "Perfil actualizado correctamente",
	},
	LangEN: {
		"status.PENDING":     "Pending",
		"status.CONFIRMED":   "Confirmed",
		"status.CANCELLED":   "Cancelled",
		"status.COMPLETED":   "Completed",
		"status.IN_PROGRESS": "In progress",

		"cancel.refundable":    "Your booking will be cancelled and you will receive a full refund of %.0f€",
		"cancel.nonRefundable": "Your booking will be cancelled. The %.0f€ advance payment will not be refunded (cancellation less than %d h before pickup)",

		"extension.paid":    "Card (paid)",
		"extension.pending": "At the agency (pending)",

		"assistance.header":   "*ASSISTANCE REQUESTED*",
		"assistance.customer": "Customer",
		"assistance.email":    "Email",
		"assistance.vehicle":  "*Vehicle:*",
		"assistance.location": "*Location:*",

		"profile.saved": "Profile updated",
	},
	LangFR: {
		"status.PENDING":     "En attente",
		"status.CONFIRMED":   "Confirmée",
		"status.CANCELLED":   "Annulée",
		"status.COMPLETED":   "Terminée",
		"status.IN_PROGRESS": "En cours",

		"cancel.refundable":    "Votre réservation sera annulée et vous recevrez un remboursement complet de %.0f€",
		"cancel.nonRefundable": "Votre réservation sera annulée. L'acompte de %.0f€ ne sera pas remboursé (annulation moins de %d h avant le départ)",

		"extension.paid":    "Carte (payé)",
		"extension.pending": "En agence (en attente)",

		"assistance.header":   "*ASSISTANCE DEMANDÉE*",
		"assistance.customer": "Client",
		"assistance.email":    "Email",
		"assistance.vehicle":  "*Véhicule:*",
		"assistance.location": "*Localisation:*",

		"profile.saved": "Profil mis à jour",
	},
}
