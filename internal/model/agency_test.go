package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewAgencyDefaults(t *testing.T) {
	a := NewAgency("Randstad", "https://www.randstad.nl")

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, "Randstad", a.AgencyName)
	assert.Equal(t, "https://www.randstad.nl", a.WebsiteURL)
	assert.Equal(t, GeoFocusNational, a.GeoFocus)
	assert.Equal(t, CaoOnbekend, a.CaoType)
	assert.Equal(t, PricingUnknown, a.PricingModel)
	assert.Equal(t, "unknown", a.VolumeSpecialisation)

	// Absence states: nil pointers, false flags, empty lists.
	assert.Nil(t, a.KvKNumber)
	assert.Nil(t, a.ReviewRating)
	assert.False(t, a.Services.Uitzenden)
	assert.Empty(t, a.SectorsCore)
	assert.Empty(t, a.EvidenceURLs)
}

func TestFlatSchemaStable(t *testing.T) {
	a := NewAgency("A", "https://a.example")
	b := NewAgency("B", "https://b.example")
	kvk := "16033314"
	b.KvKNumber = &kvk
	b.Services.Detacheren = true

	flatA, flatB := a.Flat(), b.Flat()

	// Same key set whether fields are populated or not.
	assert.Equal(t, len(flatA), len(flatB))
	for k := range flatA {
		_, ok := flatB[k]
		assert.True(t, ok, "key %s missing from second record", k)
	}

	assert.Nil(t, flatA["kvk_number"])
	assert.Equal(t, "16033314", flatB["kvk_number"])
	assert.Equal(t, false, flatA["services.detacheren"])
	assert.Equal(t, true, flatB["services.detacheren"])
}

func TestFlatCoversFlagGroups(t *testing.T) {
	flat := NewAgency("A", "https://a.example").Flat()

	for _, key := range []string{
		"services.uitzenden", "services.msp", "services.reintegratie_outplacement",
		"digital.client_portal", "digital.self_service_contracting",
		"ai.chatbot_for_candidates", "ai.ai_screening",
	} {
		_, ok := flat[key]
		assert.True(t, ok, "flag %s missing", key)
	}
}
