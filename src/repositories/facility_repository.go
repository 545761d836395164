package repositories

import (
	"context"
	"fmt"

	"healthgraph/src/domain/entities"
	"healthgraph/src/infra/graphdb"
	"healthgraph/src/repositories/mapper"
)

type FacilityRepository struct {
	*GraphRepository[entities.Facility]
}

func NewFacilityRepository(client *graphdb.GraphClient) *FacilityRepository {
	return &FacilityRepository{
		GraphRepository: NewGraphRepository(client, entities.KindFacility, mapper.FacilityProperties, mapper.ToFacility),
	}
}

// Create writes the facility, one ContactInfo node per contact and the
// HAS_CONTACT relationships in a single statement. Contacts must carry ids.
func (r *FacilityRepository) Create(ctx context.Context, facility entities.Facility) error {
	contacts := make([]map[string]any, 0, len(facility.Contacts))
	for _, contact := range facility.Contacts {
		contacts = append(contacts, mapper.ContactInfoProperties(contact))
	}

	query := fmt.Sprintf(`
		CREATE (f:%s $props)
		FOREACH (contact IN $contacts |
			CREATE (f)-[:%s]->(:%s {id: contact.id, type: contact.type, value: contact.value})
		)
	`, entities.LabelFacility, entities.RelHasContact, entities.LabelContactInfo)

	_, err := runWrite(ctx, r.client, query, map[string]any{
		"props":    mapper.FacilityProperties(facility),
		"contacts": contacts,
	})
	if err != nil {
		return fmt.Errorf("FacilityRepository.Create - failed to create facility '%s': %w", facility.ID, err)
	}

	return nil
}

// GetByID returns the facility with its contacts, or nil when absent.
func (r *FacilityRepository) GetByID(ctx context.Context, facilityID string) (*entities.Facility, error) {
	query := fmt.Sprintf(`
		MATCH (f:%s {id: $id})
		OPTIONAL MATCH (f)-[:%s]->(c:%s)
		RETURN f, collect(c) AS contacts
	`, entities.LabelFacility, entities.RelHasContact, entities.LabelContactInfo)

	records, err := runRead(ctx, r.client, query, map[string]any{"id": facilityID})
	if err != nil {
		return nil, fmt.Errorf("FacilityRepository.GetByID - failed to query facility '%s': %w", facilityID, err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	node, ok := nodeFrom(records[0], "f")
	if !ok {
		return nil, nil
	}

	facility := mapper.ToFacility(node)
	for _, contactNode := range nodesFrom(records[0], "contacts") {
		facility.Contacts = append(facility.Contacts, mapper.ToContactInfo(contactNode))
	}

	return &facility, nil
}

// GetDoctorsByFacilityID returns the active doctors working at the facility.
func (r *FacilityRepository) GetDoctorsByFacilityID(ctx context.Context, facilityID string) ([]entities.Doctor, error) {
	return GetAllSourcesByCriteria(ctx, r.GraphRepository, entities.RelWorksAt, entities.LabelFacility, facilityID, mapper.ToDoctor)
}

// GetTreatmentsByFacilityID returns the active treatments available at the facility.
func (r *FacilityRepository) GetTreatmentsByFacilityID(ctx context.Context, facilityID string) ([]entities.AbstractTreatment, error) {
	return GetAllSourcesByCriteria(ctx, r.GraphRepository, entities.RelAvailableAt, entities.LabelFacility, facilityID, mapper.ToAbstractTreatment)
}
