// Copyright (C) 2025 Incentra GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package utils

// Tabler is implemented by every persisted model.
type Tabler interface {
	TableName() string
}

// Repository is the base contract all entity repositories embed.
// Tx is the transaction handle type - kept generic so interfaces in shared
// do not need to import gorm directly.
type Repository[ID comparable, T Tabler, Tx any] interface {
	All() ([]T, error)
	Read(id ID) (T, error)
	Create(tx Tx, t *T) error
	Save(tx Tx, t *T) error
	Delete(tx Tx, id ID) error
	List(ids []ID) ([]T, error)
	Transaction(f func(tx Tx) error) error
	GetDB(tx Tx) Tx
}
