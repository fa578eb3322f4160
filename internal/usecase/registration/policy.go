package registration

import "lending-patterns/internal/validation"

// NewUserDataValidator builds the registration rules: either a federated
// sign-up, or a full login with contact details and a shipping address.
func NewUserDataValidator() validation.Validator {
	federation := validation.All("federation",
		validation.Option([]string{"foo", "bar"}, "federation_provider"),
		validation.Length(1, 100, "federation_provider"),
	)

	userID := validation.All("user_id", validation.Length(8, 12, "user_id"))
	password := validation.All("password",
		validation.MinLength(8, "password"),
		validation.ContainsDigit("password"),
		validation.ContainsSpecial("password"),
	)
	phone := validation.All("phone",
		validation.Length(8, 10, "phone"),
		validation.OnlyDigits("phone"),
	)
	username := validation.All("username",
		validation.Length(3, 20, "username"),
		validation.AlphanumericOrUnderscore("username"),
	)
	firstname := validation.All("firstname", validation.Name("firstname"))
	lastname := validation.All("lastname", validation.Name("lastname"))

	localAddress := validation.All("address",
		validation.All("address",
			validation.Length(1, 100, "address1"),
			validation.Length(1, 100, "address2"),
		),
		validation.All("postcode", validation.Length(1, 10, "postcode")),
	)
	internationalAddress := validation.All("address",
		validation.Length(4, 10, "state"),
		validation.Length(3, 100, "city"),
		validation.Length(4, 10, "zipcode"),
		validation.ContainsDigit("zipcode"),
	)
	shipping := validation.AtLeastOne("shipping", localAddress, internationalAddress)

	nonEmailLogin := validation.All("non-email login", phone, username)
	contact := validation.AtLeastOne("user contact",
		validation.Email(),
		validation.FediverseID(),
		nonEmailLogin,
	)

	login := validation.All("login", userID, password, contact, firstname, lastname, shipping)

	return validation.AtLeastOne("registration", federation, login)
}
