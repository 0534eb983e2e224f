package mysql

const upsertPropertySQL = `
INSERT INTO properties
  (id, title, description, price, image_url, images, rating, review_count,
   type, bedrooms, bathrooms, max_guests, address, city, country, lat, lon,
   amenities, host, available_from, available_to, featured)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  title          = VALUES(title),
  description    = VALUES(description),
  price          = VALUES(price),
  image_url      = VALUES(image_url),
  images         = VALUES(images),
  rating         = VALUES(rating),
  review_count   = VALUES(review_count),
  type           = VALUES(type),
  bedrooms       = VALUES(bedrooms),
  bathrooms      = VALUES(bathrooms),
  max_guests     = VALUES(max_guests),
  address        = VALUES(address),
  city           = VALUES(city),
  country        = VALUES(country),
  lat            = VALUES(lat),
  lon            = VALUES(lon),
  amenities      = VALUES(amenities),
  host           = VALUES(host),
  available_from = VALUES(available_from),
  available_to   = VALUES(available_to),
  featured       = VALUES(featured),
  updated_at     = CURRENT_TIMESTAMP
`

const listPropertiesSQL = `
SELECT id, title, description, price, image_url, images, rating,
       review_count, type, bedrooms, bathrooms, max_guests, address, city,
       country, lat, lon, amenities, host, available_from, available_to,
       featured, created_at, updated_at
FROM properties
ORDER BY created_at, id
`

const getPropertySQL = `
SELECT id, title, description, price, image_url, images, rating,
       review_count, type, bedrooms, bathrooms, max_guests, address, city,
       country, lat, lon, amenities, host, available_from, available_to,
       featured, created_at, updated_at
FROM properties
WHERE id = ?
`

const insertReviewSQL = `
INSERT INTO reviews
  (id, property_id, user_id, user_name, user_image, rating, comment, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)
`

const listReviewsSQL = `
SELECT id, property_id, user_id, user_name, user_image, rating, comment,
       created_at, updated_at
FROM reviews
WHERE property_id = ?
ORDER BY created_at DESC, id DESC
`

const insertBookingSQL = `
INSERT INTO bookings (id, first_name, last_name, email, status, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`
