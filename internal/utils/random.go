package utils

import (
	"fmt"
	"math/rand"

	"github.com/natarchives/visitordesk/backend/internal/domain"
)

var firstNames = []string{
	"Tendai", "Rudo", "Tapiwa", "Chipo", "Farai", "Nyasha", "Kudzai",
	"Tatenda", "Blessing", "Memory", "Simba", "Rutendo", "Munashe",
	"Grace", "Peter", "Anna", "David", "Sarah", "Joseph", "Ruth",
}

var surnames = []string{
	"Moyo", "Ncube", "Dube", "Sibanda", "Chirwa", "Mutasa", "Gumbo",
	"Makoni", "Chikwava", "Nyathi", "Banda", "Mapfumo", "Zvobgo",
	"Chigumba", "Marufu", "Mhlanga", "Shumba", "Mpofu", "Chari", "Dziva",
}

func GenerateRandomFullName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + surnames[rand.Intn(len(surnames))]
}

var roles = []domain.Role{
	domain.RoleAdmin,
	domain.RoleReceptionist,
	domain.RoleAccountant,
	domain.RoleLibraryOfficer,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

// GenerateRandomIDNumber produces a national-id-shaped string, e.g. 63-123456-A-12.
func GenerateRandomIDNumber() string {
	return fmt.Sprintf("%02d-%06d-%c-%02d",
		rand.Intn(90)+10, rand.Intn(1000000), 'A'+rune(rand.Intn(26)), rand.Intn(90)+10)
}

func GenerateRandomPhoneNumber() string {
	number := "07"
	for i := 0; i < 8; i++ {
		number += string(digits[rand.Intn(len(digits))])
	}
	return number
}

// GenerateRandomTicketNumber issues a receipt-shaped ticket, e.g. NAZ-24-1234.
func GenerateRandomTicketNumber(year int) string {
	return fmt.Sprintf("NAZ-%02d-%04d", year%100, rand.Intn(10000))
}

func GenerateRandomDepartment() string {
	return domain.Departments[rand.Intn(len(domain.Departments))]
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}
