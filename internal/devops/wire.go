package devops

import (
	"encoding/json"

	"devops-board/internal/domain"
)

// identityDTO decodes a person-or-team reference. The assigned-to field of
// a work item arrives either as an identity object or as a bare display
// string on older installs; both forms are accepted.
type identityDTO struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	UniqueName  string `json:"uniqueName"`
}

func (d *identityDTO) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*d = identityDTO{DisplayName: name}
		return nil
	}

	type plain identityDTO
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*d = identityDTO(p)
	return nil
}

func (d identityDTO) toDomain() domain.Identity {
	return domain.Identity{
		ID:          d.ID,
		DisplayName: d.DisplayName,
		UniqueName:  d.UniqueName,
	}
}
